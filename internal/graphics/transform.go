package graphics

import "github.com/go-gl/mathgl/mgl32"

// TransformChain is the fixed model-to-clip transform composition: positions
// go through the world (model to world), view (world to camera) and screen
// (camera to clip) matrices, in that order.
type TransformChain struct {
	World  mgl32.Mat4
	View   mgl32.Mat4
	Screen mgl32.Mat4
}

// IdentityChain returns a chain of three identity transforms.
func IdentityChain() TransformChain {
	return TransformChain{
		World:  mgl32.Ident4(),
		View:   mgl32.Ident4(),
		Screen: mgl32.Ident4(),
	}
}

// ApplyToPosition transforms a model-space position to clip space. Each stage
// is applied sequentially to a homogeneous 4-vector; the matrices are not
// pre-multiplied into one.
func (t TransformChain) ApplyToPosition(p mgl32.Vec3) mgl32.Vec4 {
	world := t.World.Mul4x1(p.Vec4(1))
	view := t.View.Mul4x1(world)
	return t.Screen.Mul4x1(view)
}

// ApplyToNormal transforms a normal by the upper 3x3 block of the world
// matrix only and renormalizes. Normals are never translated.
func (t TransformChain) ApplyToNormal(n mgl32.Vec3) mgl32.Vec3 {
	return t.World.Mat3().Mul3x1(n).Normalize()
}
