// Package blocks defines block kinds, their shared rendering resources and
// the lightweight per-placed-block instances that produce drawable views.
//
// Ownership is strictly one-directional: the Registry owns one KindResources
// per kind, instances borrow their kind's resources, and the DrawableViews
// produced each frame borrow geometry and textures from KindResources
// without ever mutating them.
package blocks

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxgfx/internal/graphics"
	"voxgfx/pkg/objmesh"
)

// ViewKind tags the closed set of view shapes a block kind can use.
type ViewKind uint8

const (
	// ViewEmpty renders nothing (air).
	ViewEmpty ViewKind = iota

	// ViewSharedPrimitive returns the kind-owned primitive mesh with no
	// per-frame work beyond selecting tint.
	ViewSharedPrimitive

	// ViewCustom computes per-frame drawable parameters from instance state
	// and the kind's cached sub-meshes.
	ViewCustom
)

// DrawableView is the per-frame renderable output of a block instance. The
// mesh and texture are borrowed from the instance's KindResources; a view
// never outlives the frame it was produced for.
type DrawableView struct {
	Mesh    *objmesh.Mesh
	Texture graphics.TextureHandle
	Variant graphics.Variant

	// Model is the model-to-world transform, relative to the block's cell.
	Model mgl32.Mat4

	// Tint is the per-instance color multiplier.
	Tint mgl32.Vec3

	// Parts are additional drawables whose Model is relative to this view's
	// Model (animated sub-parts of custom views).
	Parts []DrawableView
}

// Empty reports whether the view renders nothing.
func (v DrawableView) Empty() bool {
	return v.Mesh == nil && len(v.Parts) == 0
}

// Placement is the generic placement data per-kind instance constructors
// receive when a block is placed or deserialized.
type Placement struct {
	// Orientation in quarter turns around the up axis.
	Orientation uint8

	// State is kind-specific serialized state.
	State byte
}

// Instance is one placed block. Instances are duplicated once per block in
// the level, so they carry only truly per-block data plus a non-owning
// reference to their kind's resources.
type Instance struct {
	res *KindResources

	Orientation uint8
	Damage      uint8
	State       byte
}

// Kind returns the block kind this instance belongs to.
func (in *Instance) Kind() Kind {
	return in.res.Kind
}

// Resources returns the kind resources this instance borrows.
func (in *Instance) Resources() *KindResources {
	return in.res
}

// View produces the drawable for the instance's current state. Heavy asset
// work happened at kind construction; this only assembles references and
// per-instance parameters.
func (in *Instance) View(now time.Time) DrawableView {
	switch in.res.View {
	case ViewEmpty:
		return DrawableView{}
	case ViewSharedPrimitive:
		return DrawableView{
			Mesh:    in.res.Primitive,
			Texture: in.res.Texture,
			Variant: in.res.Variant,
			Model:   in.orientationMatrix(),
			Tint:    in.tint(),
		}
	case ViewCustom:
		return in.res.custom(in, now)
	}
	panic("blocks: unknown view kind") // closed set; unreachable
}

// orientationMatrix rotates the block around the up axis by quarter turns.
func (in *Instance) orientationMatrix() mgl32.Mat4 {
	turns := in.Orientation % 4
	if turns == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3DZ(float32(turns) * math.Pi / 2)
}

// tint darkens the kind's base tint as the block takes damage.
func (in *Instance) tint() mgl32.Vec3 {
	factor := 1 - float32(in.Damage)/512
	return in.res.Tint.Mul(factor)
}
