// Package objmesh loads triangulated Wavefront-OBJ-like mesh records and
// converts them into validated, engine-native vertex/index buffers.
//
// Only vertex positions (v), vertex normals (vn), texture coordinates (vt)
// and triangular faces (f) are read; every other record type is ignored.
// Faces must be pre-triangulated by the authoring tool.
package objmesh

// Capacity limits of the index representation. Indices are uint16, so a mesh
// may address at most 65536 distinct vertices (0..65535).
const (
	MaxVertices  = 65536
	MaxTriangles = 131072
	MaxIndices   = 3 * MaxTriangles
)

// Vertex is a single deduplicated mesh vertex in the engine coordinate frame
// (right-handed, Y forward, Z up).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Mesh is validated, triangulated geometry. A Mesh is built once by Load or
// Build and never modified afterwards; block kinds share meshes by pointer.
//
// Invariants: len(Vertices) <= MaxVertices, len(Indices) <= MaxIndices,
// len(Indices)%3 == 0, and every index is < len(Vertices).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Corner is one face corner: indices (0-based) into the position, texture
// coordinate and normal tables of a RawMeshRecord.
type Corner struct {
	Position int
	UV       int
	Normal   int
}

// Face is a single triangle of a RawMeshRecord.
type Face [3]Corner

// RawMeshRecord holds mesh data as authored, before validation and before
// conversion to the engine coordinate frame. Positions and normals are in
// the authoring frame (right-handed, Y up); UVs use a bottom-left origin.
//
// A RawMeshRecord is transient: it is consumed by Build and not retained.
type RawMeshRecord struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Faces     []Face
}

// FromAuthoring converts a vector from the authoring frame (right-handed,
// Y up) into the engine frame (right-handed, Y forward, Z up). The mapping
// is a fixed axis permutation applied uniformly: (x, y, z) -> (x, -z, y).
func FromAuthoring(v [3]float32) [3]float32 {
	return [3]float32{v[0], -v[2], v[1]}
}

// ToAuthoring is the inverse of FromAuthoring.
func ToAuthoring(v [3]float32) [3]float32 {
	return [3]float32{v[0], v[2], -v[1]}
}
