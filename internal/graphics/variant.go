package graphics

import (
	"fmt"
	"strings"
)

// LightingMode selects how a drawable's fragments are lit.
type LightingMode uint8

const (
	// LightingUnlit applies no lighting term.
	LightingUnlit LightingMode = iota

	// LightingDirectional applies ambient plus diffuse directional lighting.
	LightingDirectional

	// LightingSimple applies the directionless exposure abs(dot(up, normal)).
	LightingSimple
)

func (m LightingMode) String() string {
	switch m {
	case LightingUnlit:
		return "unlit"
	case LightingDirectional:
		return "directional"
	case LightingSimple:
		return "simple"
	}
	return fmt.Sprintf("LightingMode(%d)", uint8(m))
}

// FeatureSet declares which optional rendering features a drawable uses.
// Each valid combination resolves to exactly one shader Variant.
type FeatureSet struct {
	Textured bool
	Lighting LightingMode
}

// Variant identifies one compiled shader program.
type Variant uint8

const (
	VariantFlat Variant = iota
	VariantFlatTextured
	VariantLit
	VariantLitTextured
	VariantSimpleLit
	VariantSimpleLitTextured

	variantCount
)

func (v Variant) String() string {
	switch v {
	case VariantFlat:
		return "flat"
	case VariantFlatTextured:
		return "flat-textured"
	case VariantLit:
		return "lit"
	case VariantLitTextured:
		return "lit-textured"
	case VariantSimpleLit:
		return "simple-lit"
	case VariantSimpleLitTextured:
		return "simple-lit-textured"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Features returns the feature set the variant was selected for.
func (v Variant) Features() FeatureSet {
	switch v {
	case VariantFlatTextured:
		return FeatureSet{Textured: true}
	case VariantLit:
		return FeatureSet{Lighting: LightingDirectional}
	case VariantLitTextured:
		return FeatureSet{Textured: true, Lighting: LightingDirectional}
	case VariantSimpleLit:
		return FeatureSet{Lighting: LightingSimple}
	case VariantSimpleLitTextured:
		return FeatureSet{Textured: true, Lighting: LightingSimple}
	}
	return FeatureSet{}
}

// Variants lists every shader variant, in compilation order.
func Variants() []Variant {
	all := make([]Variant, variantCount)
	for i := range all {
		all[i] = Variant(i)
	}
	return all
}

// VariantFor resolves a feature set to its shader variant. The mapping is
// total over valid feature sets; an unknown lighting mode is a configuration
// error and must abort kind construction, not draw calls.
func VariantFor(f FeatureSet) (Variant, error) {
	switch f.Lighting {
	case LightingUnlit:
		if f.Textured {
			return VariantFlatTextured, nil
		}
		return VariantFlat, nil
	case LightingDirectional:
		if f.Textured {
			return VariantLitTextured, nil
		}
		return VariantLit, nil
	case LightingSimple:
		if f.Textured {
			return VariantSimpleLitTextured, nil
		}
		return VariantSimpleLit, nil
	}
	return 0, fmt.Errorf("graphics: no shader variant for lighting mode %d", f.Lighting)
}

// The shader family below is generated from one template per stage so the
// transform and tint logic exists once, not copied per variant.

// VertexSource returns the GLSL vertex shader for a variant.
//
// Positions go through world, view and screen transforms sequentially as
// homogeneous 4-vectors. Normals use the upper 3x3 of the world transform
// and are renormalized in the fragment stage after interpolation.
func VertexSource(v Variant) string {
	f := v.Features()
	var b strings.Builder

	b.WriteString(`#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec3 color_multiplier;
layout(location = 3) in vec2 texture_coords;
uniform mat4 screen_transform;
uniform mat4 view_transform;
uniform mat4 world_transform;
out vec3 v_color;
`)
	if f.Textured {
		b.WriteString("out vec2 v_uv;\n")
	}
	if f.Lighting != LightingUnlit {
		b.WriteString("out vec3 v_normal;\n")
	}

	b.WriteString(`void main() {
	vec4 world_pos = world_transform * vec4(position, 1.0);
	vec4 view_pos = view_transform * world_pos;
	gl_Position = screen_transform * view_pos;
	v_color = color_multiplier;
`)
	if f.Textured {
		b.WriteString("\tv_uv = texture_coords;\n")
	}
	if f.Lighting != LightingUnlit {
		b.WriteString("\tv_normal = mat3(world_transform) * normal;\n")
	}
	b.WriteString("}\n")

	return b.String()
}

// FragmentSource returns the GLSL fragment shader for a variant. The color
// formula matches ShadeFragment.
func FragmentSource(v Variant) string {
	f := v.Features()
	var b strings.Builder

	b.WriteString("#version 330 core\nin vec3 v_color;\n")
	if f.Textured {
		b.WriteString("in vec2 v_uv;\nuniform sampler2D tex;\n")
	}
	if f.Lighting != LightingUnlit {
		b.WriteString("in vec3 v_normal;\n")
	}
	if f.Lighting == LightingDirectional {
		b.WriteString("uniform vec3 ambient_color;\nuniform vec3 diffuse_color;\nuniform vec3 diffuse_direction;\n")
	}
	b.WriteString("uniform vec3 color_multiplier_global;\nout vec4 frag_color;\n")

	b.WriteString("void main() {\n\tvec3 tint = v_color * color_multiplier_global;\n")
	switch f.Lighting {
	case LightingDirectional:
		b.WriteString(`	vec3 n = normalize(v_normal);
	float exposure = (dot(-diffuse_direction, n) + 1.0) / 2.0;
	tint *= ambient_color + diffuse_color * exposure;
`)
	case LightingSimple:
		b.WriteString(`	vec3 n = normalize(v_normal);
	tint *= abs(dot(vec3(0.0, 0.0, 1.0), n));
`)
	}
	if f.Textured {
		b.WriteString(`	vec4 texel = texture(tex, v_uv);
	if (texel.a < 1.0) discard;
	frag_color = vec4(texel.rgb * tint, 1.0);
`)
	} else {
		b.WriteString("\tfrag_color = vec4(tint, 1.0);\n")
	}
	b.WriteString("}\n")

	return b.String()
}
