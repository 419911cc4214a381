package graphics

import (
	"strings"
	"testing"
)

func TestVariantMappingIsTotal(t *testing.T) {
	seen := make(map[Variant]FeatureSet)
	for _, textured := range []bool{false, true} {
		for _, lighting := range []LightingMode{LightingUnlit, LightingDirectional, LightingSimple} {
			f := FeatureSet{Textured: textured, Lighting: lighting}
			v, err := VariantFor(f)
			if err != nil {
				t.Fatalf("No variant for %+v: %v", f, err)
			}
			if prev, dup := seen[v]; dup {
				t.Errorf("Variant %v claimed by both %+v and %+v", v, prev, f)
			}
			seen[v] = f
		}
	}
	if len(seen) != int(variantCount) {
		t.Errorf("Expected %d distinct variants, got %d", variantCount, len(seen))
	}
}

func TestVariantForUnknownLighting(t *testing.T) {
	if _, err := VariantFor(FeatureSet{Lighting: LightingMode(99)}); err == nil {
		t.Errorf("Expected an error for an unmapped lighting mode")
	}
}

func TestVariantFeaturesRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		got, err := VariantFor(v.Features())
		if err != nil {
			t.Fatalf("VariantFor(%v.Features()): %v", v, err)
		}
		if got != v {
			t.Errorf("Variant %v features map back to %v", v, got)
		}
	}
}

func TestGeneratedSources(t *testing.T) {
	for _, v := range Variants() {
		f := v.Features()
		vert, frag := VertexSource(v), FragmentSource(v)

		for _, uniform := range []string{"screen_transform", "view_transform", "world_transform"} {
			if !strings.Contains(vert, uniform) {
				t.Errorf("%v vertex shader lacks %s", v, uniform)
			}
		}
		if !strings.Contains(frag, "color_multiplier_global") {
			t.Errorf("%v fragment shader lacks the global color multiplier", v)
		}

		if got := strings.Contains(frag, "discard"); got != f.Textured {
			t.Errorf("%v fragment shader discard = %v, want %v", v, got, f.Textured)
		}
		if got := strings.Contains(frag, "diffuse_direction"); got != (f.Lighting == LightingDirectional) {
			t.Errorf("%v fragment shader diffuse_direction = %v", v, got)
		}
		if got := strings.Contains(frag, "abs(dot("); got != (f.Lighting == LightingSimple) {
			t.Errorf("%v fragment shader simple exposure = %v", v, got)
		}
		if got := strings.Contains(vert, "mat3(world_transform)"); got != (f.Lighting != LightingUnlit) {
			t.Errorf("%v vertex shader normal transform = %v", v, got)
		}
	}
}
