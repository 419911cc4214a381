package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"voxgfx/internal/blocks"
	"voxgfx/internal/graphics"
	"voxgfx/pkg/objmesh"
)

// vertexStride is the byte size of one objmesh.Vertex: position, normal
// and UV packed as eight float32s.
const vertexStride = 8 * 4

const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2
	attribUV       = 3
)

type meshBuffers struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// Pipeline draws block views. It owns one compiled shader program per
// variant and uploads each distinct mesh to the GPU once, keyed by pointer
// identity so shared primitives share buffers.
type Pipeline struct {
	log     *zap.Logger
	shaders map[graphics.Variant]*graphics.Shader
	buffers map[*objmesh.Mesh]meshBuffers

	view     mgl32.Mat4
	screen   mgl32.Mat4
	lighting graphics.Lighting
}

// NewPipeline compiles every shader variant up front. Requires a current GL
// context.
func NewPipeline(log *zap.Logger) (*Pipeline, error) {
	p := &Pipeline{
		log:     log,
		shaders: make(map[graphics.Variant]*graphics.Shader),
		buffers: make(map[*objmesh.Mesh]meshBuffers),
	}

	for _, v := range graphics.Variants() {
		shader, err := graphics.NewVariantShader(v)
		if err != nil {
			p.Delete()
			return nil, err
		}
		p.shaders[v] = shader
		log.Debug("compiled shader variant", zap.Stringer("variant", v))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	return p, nil
}

// Begin starts a frame: clears the framebuffer and fixes the view, screen
// and lighting parameters every subsequent Draw call uses.
func (p *Pipeline) Begin(view, screen mgl32.Mat4, lighting graphics.Lighting) {
	p.view = view
	p.screen = screen
	p.lighting = lighting

	gl.ClearColor(0.05, 0.07, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders a block view placed at the given cell origin. Nested parts
// inherit the parent's world transform.
func (p *Pipeline) Draw(v blocks.DrawableView, origin mgl32.Vec3) {
	p.draw(v, mgl32.Translate3D(origin.X(), origin.Y(), origin.Z()))
}

func (p *Pipeline) draw(v blocks.DrawableView, parent mgl32.Mat4) {
	world := parent.Mul4(v.Model)

	if v.Mesh != nil {
		p.drawMesh(v, world)
	}
	for _, part := range v.Parts {
		p.draw(part, world)
	}
}

func (p *Pipeline) drawMesh(v blocks.DrawableView, world mgl32.Mat4) {
	shader, ok := p.shaders[v.Variant]
	if !ok {
		panic(fmt.Sprintf("render: no shader for variant %v", v.Variant))
	}
	shader.Use()

	shader.SetMatrix4("screen_transform", &p.screen[0])
	shader.SetMatrix4("view_transform", &p.view[0])
	shader.SetMatrix4("world_transform", &world[0])
	shader.SetVector3("color_multiplier_global", v.Tint.X(), v.Tint.Y(), v.Tint.Z())

	features := v.Variant.Features()
	if features.Lighting == graphics.LightingDirectional {
		a, d, dir := p.lighting.Ambient, p.lighting.Diffuse, p.lighting.Direction
		shader.SetVector3("ambient_color", a.X(), a.Y(), a.Z())
		shader.SetVector3("diffuse_color", d.X(), d.Y(), d.Z())
		shader.SetVector3("diffuse_direction", dir.X(), dir.Y(), dir.Z())
	}
	if features.Textured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, uint32(v.Texture))
		shader.SetInt("tex", 0)
	}

	buf := p.buffersFor(v.Mesh)
	gl.BindVertexArray(buf.vao)

	// Meshes carry no per-vertex color; feed white through the constant
	// attribute so the tint formula stays uniform across variants.
	gl.VertexAttrib3f(attribColor, 1, 1, 1)

	gl.DrawElements(gl.TRIANGLES, buf.count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

// buffersFor uploads the mesh on first use and returns its buffer set.
func (p *Pipeline) buffersFor(m *objmesh.Mesh) meshBuffers {
	if buf, ok := p.buffers[m]; ok {
		return buf
	}

	var buf meshBuffers
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexStride, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribPosition, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointer(attribNormal, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(attribUV)
	gl.VertexAttribPointer(attribUV, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(6*4))

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	buf.count = int32(len(m.Indices))
	p.buffers[m] = buf

	p.log.Debug("uploaded mesh",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
	)
	return buf
}

// Delete releases every GPU resource the pipeline owns.
func (p *Pipeline) Delete() {
	for _, shader := range p.shaders {
		shader.Delete()
	}
	for m, buf := range p.buffers {
		gl.DeleteVertexArrays(1, &buf.vao)
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteBuffers(1, &buf.ebo)
		delete(p.buffers, m)
	}
}
