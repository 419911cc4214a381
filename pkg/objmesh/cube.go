package objmesh

// cubeFace describes one axis-aligned cube face by its outward normal and
// the two in-plane axes. The cross product tangent x bitangent equals the
// normal, which keeps the winding counter-clockwise seen from outside.
type cubeFace struct {
	normal    [3]float32
	tangent   [3]float32
	bitangent [3]float32
}

var cubeFaces = [6]cubeFace{
	{normal: [3]float32{1, 0, 0}, tangent: [3]float32{0, 1, 0}, bitangent: [3]float32{0, 0, 1}},
	{normal: [3]float32{-1, 0, 0}, tangent: [3]float32{0, -1, 0}, bitangent: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 1, 0}, tangent: [3]float32{0, 0, 1}, bitangent: [3]float32{1, 0, 0}},
	{normal: [3]float32{0, -1, 0}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, tangent: [3]float32{1, 0, 0}, bitangent: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, tangent: [3]float32{0, 1, 0}, bitangent: [3]float32{1, 0, 0}},
}

// UnitCube builds a unit cube centered at the origin, already in the engine
// frame. Each face carries its own four vertices (flat normals) and maps the
// full texture, UV origin at the bottom-left corner.
//
// UnitCube allocates a fresh Mesh per call; callers that want the shared
// full-cube primitive should go through their asset source, which caches a
// single instance.
func UnitCube() *Mesh {
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}

	for _, f := range cubeFaces {
		base := uint16(len(mesh.Vertices))
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			var pos [3]float32
			for i := 0; i < 3; i++ {
				pos[i] = 0.5*f.normal[i] + 0.5*c[0]*f.tangent[i] + 0.5*c[1]*f.bitangent[i]
			}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos,
				Normal:   f.normal,
				UV:       [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		mesh.Indices = append(mesh.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return mesh
}
