package blocks

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxgfx/internal/graphics"
	"voxgfx/pkg/objmesh"
)

// Built-in block kinds.
const (
	KindAir    Kind = "air"
	KindStone  Kind = "stone"
	KindSand   Kind = "sand"
	KindPusher Kind = "pusher"
	KindBeacon Kind = "beacon"
)

// Pusher head travel along the up axis, in block units.
const (
	pusherRetractedOffset = 0.1
	pusherExtendedOffset  = 0.35
)

// PusherExtended is the pusher state bit for an extended head.
const PusherExtended byte = 1

// Definitions returns the static registration table of every known block
// kind. The table is the sole extension point for new kinds; the set is
// closed once a Registry is built from it.
func Definitions() map[Kind]Definition {
	return map[Kind]Definition{
		KindAir: {
			Build: func(AssetSource) (*KindResources, error) {
				return &KindResources{View: ViewEmpty}, nil
			},
			NewInstance: placedInstance,
		},

		KindStone: {
			Build:       buildFullCube("stone", mgl32.Vec3{1, 1, 1}),
			NewInstance: placedInstance,
		},

		KindSand: {
			Build:       buildFullCube("sand", mgl32.Vec3{0.98, 0.93, 0.72}),
			NewInstance: placedInstance,
		},

		KindPusher: {
			Build:       buildPusher,
			NewInstance: placedInstance,
		},

		KindBeacon: {
			Build:       buildBeacon,
			NewInstance: placedInstance,
		},
	}
}

// placedInstance is the default instance constructor: orientation and
// kind-specific state straight from the placement data.
func placedInstance(p Placement) Instance {
	return Instance{Orientation: p.Orientation, State: p.State}
}

// buildFullCube returns a builder for the common opaque-cube kinds: the
// shared unit cube primitive, one texture, directional lighting.
func buildFullCube(texture string, tint mgl32.Vec3) func(AssetSource) (*KindResources, error) {
	return func(src AssetSource) (*KindResources, error) {
		variant, err := graphics.VariantFor(graphics.FeatureSet{
			Textured: true,
			Lighting: graphics.LightingDirectional,
		})
		if err != nil {
			return nil, err
		}
		tex, err := src.Texture(texture)
		if err != nil {
			return nil, err
		}
		return &KindResources{
			View:      ViewSharedPrimitive,
			Primitive: src.UnitCube(),
			Texture:   tex,
			Variant:   variant,
			Tint:      tint,
		}, nil
	}
}

func buildPusher(src AssetSource) (*KindResources, error) {
	variant, err := graphics.VariantFor(graphics.FeatureSet{
		Textured: true,
		Lighting: graphics.LightingDirectional,
	})
	if err != nil {
		return nil, err
	}
	tex, err := src.Texture("pusher")
	if err != nil {
		return nil, err
	}

	body, err := src.Mesh("pusher_body")
	if err != nil {
		return nil, err
	}
	head, err := src.Mesh("pusher_head")
	if err != nil {
		return nil, err
	}

	return &KindResources{
		View:    ViewCustom,
		Meshes:  map[string]*objmesh.Mesh{"body": body, "head": head},
		Texture: tex,
		Variant: variant,
		Tint:    mgl32.Vec3{1, 1, 1},
		custom:  pusherView,
	}, nil
}

// pusherView assembles the two-part pusher drawable: the body at the cell
// origin and the head offset along the up axis by the extension state.
func pusherView(in *Instance, _ time.Time) DrawableView {
	res := in.Resources()

	offset := float32(pusherRetractedOffset)
	if in.State&PusherExtended != 0 {
		offset = pusherExtendedOffset
	}

	head := DrawableView{
		Mesh:    res.Meshes["head"],
		Texture: res.Texture,
		Variant: res.Variant,
		Model:   mgl32.Translate3D(0, 0, offset),
		Tint:    in.tint(),
	}
	return DrawableView{
		Mesh:    res.Meshes["body"],
		Texture: res.Texture,
		Variant: res.Variant,
		Model:   in.orientationMatrix(),
		Tint:    in.tint(),
		Parts:   []DrawableView{head},
	}
}

func buildBeacon(src AssetSource) (*KindResources, error) {
	variant, err := graphics.VariantFor(graphics.FeatureSet{
		Textured: false,
		Lighting: graphics.LightingSimple,
	})
	if err != nil {
		return nil, err
	}
	return &KindResources{
		View:      ViewCustom,
		Primitive: src.UnitCube(),
		Variant:   variant,
		Tint:      mgl32.Vec3{0.6, 0.9, 1},
		custom:    beaconView,
	}, nil
}

// beaconView is an untextured pillar whose brightness pulses with time.
func beaconView(in *Instance, now time.Time) DrawableView {
	res := in.Resources()

	const period = 4 * time.Second
	phase := float64(now.UnixNano()%int64(period)) / float64(period)
	pulse := 0.75 + 0.25*float32(math.Sin(2*math.Pi*phase))

	return DrawableView{
		Mesh:    res.Primitive,
		Variant: res.Variant,
		Model:   in.orientationMatrix().Mul4(mgl32.Scale3D(0.4, 0.4, 1)),
		Tint:    in.tint().Mul(pulse),
	}
}
