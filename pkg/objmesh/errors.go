package objmesh

import (
	"errors"
	"fmt"
)

// Data categories reported by MissingDataError and InvalidIndexError.
const (
	CategoryPositions = "positions"
	CategoryNormals   = "normals"
	CategoryUVs       = "texture coordinates"
	CategoryFaces     = "faces"
)

var (
	// ErrUnsupportedFace marks a face whose corner count is not exactly 3.
	// The loader performs no triangulation; authoring tools must export
	// pre-triangulated meshes.
	ErrUnsupportedFace = errors.New("objmesh: face is not a triangle")

	// ErrTooManyVertices marks a mesh that expands to more than MaxVertices
	// distinct vertices.
	ErrTooManyVertices = errors.New("objmesh: too many vertices")

	// ErrTooManyFaces marks a mesh with more than MaxTriangles triangles.
	ErrTooManyFaces = errors.New("objmesh: too many faces")
)

// MissingDataError reports that a mesh record lacks one of the four required
// data categories entirely, or that a face omits a per-corner index for it.
type MissingDataError struct {
	Category string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("objmesh: mesh has no %s", e.Category)
}

// InvalidIndexError reports a face corner that references an index outside
// its table. Index is 0-based, as stored in the RawMeshRecord.
type InvalidIndexError struct {
	Category string
	Index    int
	Count    int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("objmesh: face references %s index %d, but only %d available",
		e.Category, e.Index, e.Count)
}
