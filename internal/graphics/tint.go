package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the engine up axis (Z up, Y forward, right-handed).
var Up = mgl32.Vec3{0, 0, 1}

// Lighting holds the frame-wide directional light parameters.
type Lighting struct {
	// Ambient light color, applied regardless of surface orientation.
	Ambient mgl32.Vec3

	// Diffuse light color, scaled by the directional exposure.
	Diffuse mgl32.Vec3

	// Direction the light travels, normalized.
	Direction mgl32.Vec3
}

// DefaultLighting returns the warm-sun / cool-sky lighting the engine uses
// when no level overrides it.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:   mgl32.Vec3{0.1, 0.15, 0.3},
		Diffuse:   mgl32.Vec3{0.9, 0.85, 0.6},
		Direction: mgl32.Vec3{1, 2, -3}.Normalize(),
	}
}

// Factor returns the color the surface tint is multiplied by under this
// light: ambient + diffuse * exposure.
func (l Lighting) Factor(normal mgl32.Vec3) mgl32.Vec3 {
	return l.Ambient.Add(l.Diffuse.Mul(DirectionalExposure(l.Direction, normal)))
}

// DirectionalExposure is the diffuse exposure of a surface to a directional
// light: (dot(-lightDirection, normal) + 1) / 2, in [0, 1] for unit inputs.
func DirectionalExposure(lightDir, normal mgl32.Vec3) float32 {
	return (lightDir.Mul(-1).Dot(normal) + 1) / 2
}

// SimpleExposure is the directionless exposure used by the simple-lit
// variants: abs(dot(up, normal)).
func SimpleExposure(normal mgl32.Vec3) float32 {
	return float32(math.Abs(float64(Up.Dot(normal))))
}

// ComposeTint combines exactly the three multiplicative tint terms: the
// per-vertex color multiplier, the per-instance/global color multiplier and
// the lighting exposure factor.
func ComposeTint(perVertex, global mgl32.Vec3, exposure float32) mgl32.Vec3 {
	return mulElem(perVertex, global).Mul(exposure)
}

// Texel is a sampled texture color with straight (non-premultiplied) alpha.
type Texel struct {
	R, G, B, A float32
}

// ShadeFragment is the reference fragment formula mirrored by the generated
// GLSL (see FragmentSource). It returns the final fragment color and whether
// the fragment is drawn at all.
//
// Textured variants have full-only-alpha semantics: any sampled alpha other
// than exactly 1 discards the fragment instead of blending.
func ShadeFragment(features FeatureSet, lighting Lighting, normal mgl32.Vec3,
	texel Texel, perVertex, global mgl32.Vec3) (mgl32.Vec3, bool) {

	tint := mulElem(perVertex, global)

	switch features.Lighting {
	case LightingUnlit:
	case LightingDirectional:
		tint = mulElem(tint, lighting.Factor(normal))
	case LightingSimple:
		tint = tint.Mul(SimpleExposure(normal))
	}

	if !features.Textured {
		return tint, true
	}
	if texel.A != 1 {
		return mgl32.Vec3{}, false
	}
	return mulElem(tint, mgl32.Vec3{texel.R, texel.G, texel.B}), true
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
