package objmesh

import (
	"math"
	"testing"
)

func TestUnitCube(t *testing.T) {
	cube := UnitCube()

	if len(cube.Vertices) != 24 {
		t.Errorf("Expected 24 vertices (4 per face), got %d", len(cube.Vertices))
	}
	if len(cube.Indices) != 36 {
		t.Errorf("Expected 36 indices (2 triangles per face), got %d", len(cube.Indices))
	}

	for i, v := range cube.Vertices {
		for _, c := range v.Position {
			if c != 0.5 && c != -0.5 {
				t.Errorf("Vertex %d position %v is not on the unit cube", i, v.Position)
			}
		}
		if v.UV[0] < 0 || v.UV[0] > 1 || v.UV[1] < 0 || v.UV[1] > 1 {
			t.Errorf("Vertex %d UV %v outside [0,1]", i, v.UV)
		}
	}

	for _, idx := range cube.Indices {
		if int(idx) >= len(cube.Vertices) {
			t.Fatalf("Index %d out of range", idx)
		}
	}
}

// Winding must be counter-clockwise seen from outside: the geometric normal
// of every triangle has to point the same way as the vertex normals.
func TestUnitCubeWinding(t *testing.T) {
	cube := UnitCube()

	for i := 0; i < len(cube.Indices); i += 3 {
		a := cube.Vertices[cube.Indices[i]]
		b := cube.Vertices[cube.Indices[i+1]]
		c := cube.Vertices[cube.Indices[i+2]]

		var ab, ac [3]float32
		for k := 0; k < 3; k++ {
			ab[k] = b.Position[k] - a.Position[k]
			ac[k] = c.Position[k] - a.Position[k]
		}
		cross := [3]float32{
			ab[1]*ac[2] - ab[2]*ac[1],
			ab[2]*ac[0] - ab[0]*ac[2],
			ab[0]*ac[1] - ab[1]*ac[0],
		}

		dot := float64(cross[0]*a.Normal[0] + cross[1]*a.Normal[1] + cross[2]*a.Normal[2])
		if dot <= 0 || math.IsNaN(dot) {
			t.Errorf("Triangle %d wound clockwise (dot %v)", i/3, dot)
		}
	}
}
