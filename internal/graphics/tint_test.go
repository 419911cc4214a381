package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComposeTint(t *testing.T) {
	got := ComposeTint(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0.5, 0.5, 0.5}, 0.8)
	want := mgl32.Vec3{0.4, 0.4, 0.4}
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Expected combined tint %v, got %v", want, got)
	}
}

func TestDirectionalExposure(t *testing.T) {
	down := mgl32.Vec3{0, 0, -1}

	cases := []struct {
		normal mgl32.Vec3
		want   float32
	}{
		{mgl32.Vec3{0, 0, 1}, 1},    // facing the light
		{mgl32.Vec3{0, 0, -1}, 0},   // facing away
		{mgl32.Vec3{1, 0, 0}, 0.5},  // perpendicular
		{mgl32.Vec3{0, -1, 0}, 0.5}, // perpendicular
	}
	for _, tc := range cases {
		if got := DirectionalExposure(down, tc.normal); mgl32.Abs(got-tc.want) > 1e-6 {
			t.Errorf("Exposure of normal %v: expected %v, got %v", tc.normal, tc.want, got)
		}
	}
}

func TestSimpleExposure(t *testing.T) {
	cases := []struct {
		normal mgl32.Vec3
		want   float32
	}{
		{mgl32.Vec3{0, 0, 1}, 1},
		{mgl32.Vec3{0, 0, -1}, 1}, // directionless: bottom as bright as top
		{mgl32.Vec3{1, 0, 0}, 0},
		{mgl32.Vec3{0.6, 0, 0.8}, 0.8},
	}
	for _, tc := range cases {
		if got := SimpleExposure(tc.normal); mgl32.Abs(got-tc.want) > 1e-6 {
			t.Errorf("Simple exposure of %v: expected %v, got %v", tc.normal, tc.want, got)
		}
	}
}

func TestShadeFragmentAlphaDiscard(t *testing.T) {
	features := FeatureSet{Textured: true, Lighting: LightingUnlit}
	white := mgl32.Vec3{1, 1, 1}

	_, drawn := ShadeFragment(features, Lighting{}, Up, Texel{1, 1, 1, 0.999}, white, white)
	if drawn {
		t.Errorf("Fragment with alpha 0.999 must be discarded")
	}

	color, drawn := ShadeFragment(features, Lighting{}, Up, Texel{1, 0.5, 0.25, 1}, white, mgl32.Vec3{0.5, 0.5, 0.5})
	if !drawn {
		t.Fatalf("Fully opaque fragment must be drawn")
	}
	want := mgl32.Vec3{0.5, 0.25, 0.125}
	if !color.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Expected tinted texel %v, got %v", want, color)
	}
}

func TestShadeFragmentUntextured(t *testing.T) {
	features := FeatureSet{Textured: false, Lighting: LightingUnlit}

	// Untextured variants never sample and never discard; the texel value
	// must not matter.
	color, drawn := ShadeFragment(features, Lighting{}, Up, Texel{0, 0, 0, 0}, mgl32.Vec3{1, 0.5, 1}, mgl32.Vec3{0.5, 1, 1})
	if !drawn {
		t.Fatalf("Untextured fragment must be drawn")
	}
	want := mgl32.Vec3{0.5, 0.5, 1}
	if !color.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Expected flat tint %v, got %v", want, color)
	}
}

func TestShadeFragmentDirectional(t *testing.T) {
	features := FeatureSet{Lighting: LightingDirectional}
	lighting := Lighting{
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Direction: mgl32.Vec3{0, 0, -1},
	}
	white := mgl32.Vec3{1, 1, 1}

	// Normal facing the light: exposure 1, factor = ambient + diffuse.
	color, _ := ShadeFragment(features, lighting, mgl32.Vec3{0, 0, 1}, Texel{}, white, white)
	want := mgl32.Vec3{1.2, 1.2, 1.2}
	if !color.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Expected lit color %v, got %v", want, color)
	}

	// Facing away: ambient only.
	color, _ = ShadeFragment(features, lighting, mgl32.Vec3{0, 0, -1}, Texel{}, white, white)
	if !color.ApproxEqualThreshold(lighting.Ambient, 1e-6) {
		t.Errorf("Expected ambient-only color %v, got %v", lighting.Ambient, color)
	}
}
