package objmesh

import (
	"fmt"
	"io"
)

// Load parses OBJ-like text from r and builds a validated Mesh.
func Load(r io.Reader) (*Mesh, error) {
	rec, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Build(rec)
}

// Build validates a RawMeshRecord and converts it into a Mesh.
//
// Positions and normals are converted from the authoring frame into the
// engine frame (see FromAuthoring). One output vertex is emitted per distinct
// (position, uv, normal) index triple referenced by any face, so a position
// reused with different normals or UVs expands into multiple vertices.
//
// Errors: MissingDataError if a data category is absent, InvalidIndexError if
// a face references an out-of-range index, ErrTooManyVertices and
// ErrTooManyFaces if the expanded mesh exceeds the index representation
// limits. On error no partial Mesh is returned.
func Build(rec *RawMeshRecord) (*Mesh, error) {
	if err := checkPresence(rec); err != nil {
		return nil, err
	}
	if err := checkIndices(rec); err != nil {
		return nil, err
	}

	vertices, indices := expand(rec)

	if n := len(vertices); n > MaxVertices {
		return nil, fmt.Errorf("objmesh: mesh expands to %d vertices (limit %d): %w",
			n, MaxVertices, ErrTooManyVertices)
	}
	if n := len(indices) / 3; n > MaxTriangles {
		return nil, fmt.Errorf("objmesh: mesh has %d triangles (limit %d): %w",
			n, MaxTriangles, ErrTooManyFaces)
	}

	mesh := &Mesh{
		Vertices: vertices,
		Indices:  make([]uint16, len(indices)),
	}
	for i, idx := range indices {
		mesh.Indices[i] = uint16(idx)
	}
	return mesh, nil
}

func checkPresence(rec *RawMeshRecord) error {
	switch {
	case len(rec.Positions) == 0:
		return &MissingDataError{Category: CategoryPositions}
	case len(rec.Faces) == 0:
		return &MissingDataError{Category: CategoryFaces}
	case len(rec.Normals) == 0:
		return &MissingDataError{Category: CategoryNormals}
	case len(rec.UVs) == 0:
		return &MissingDataError{Category: CategoryUVs}
	}
	return nil
}

func checkIndices(rec *RawMeshRecord) error {
	for _, face := range rec.Faces {
		for _, c := range face {
			if c.Position < 0 || c.Position >= len(rec.Positions) {
				return &InvalidIndexError{Category: CategoryPositions, Index: c.Position, Count: len(rec.Positions)}
			}
			if c.UV < 0 || c.UV >= len(rec.UVs) {
				return &InvalidIndexError{Category: CategoryUVs, Index: c.UV, Count: len(rec.UVs)}
			}
			if c.Normal < 0 || c.Normal >= len(rec.Normals) {
				return &InvalidIndexError{Category: CategoryNormals, Index: c.Normal, Count: len(rec.Normals)}
			}
		}
	}
	return nil
}

// expand performs the standard OBJ vertex expansion: faces index positions,
// UVs and normals independently, while the engine wants a single index per
// vertex. Corners sharing the same index triple collapse into one vertex.
func expand(rec *RawMeshRecord) ([]Vertex, []int) {
	seen := make(map[Corner]int)
	vertices := make([]Vertex, 0, len(rec.Positions))
	indices := make([]int, 0, len(rec.Faces)*3)

	for _, face := range rec.Faces {
		for _, c := range face {
			idx, ok := seen[c]
			if !ok {
				idx = len(vertices)
				seen[c] = idx
				vertices = append(vertices, Vertex{
					Position: FromAuthoring(rec.Positions[c.Position]),
					Normal:   FromAuthoring(rec.Normals[c.Normal]),
					UV:       rec.UVs[c.UV],
				})
			}
			indices = append(indices, idx)
		}
	}

	return vertices, indices
}
