package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads OBJ-like text into a RawMeshRecord.
//
// Recognized records are v, vn, vt and f; anything else (comments, grouping,
// materials, per-vertex color extensions) is skipped. Face lines must have
// exactly three corners, each of the full p/t/n form; quads and polygons fail
// with ErrUnsupportedFace.
func Parse(r io.Reader) (*RawMeshRecord, error) {
	rec := &RawMeshRecord{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objmesh: line %d: bad position: %w", line, err)
			}
			rec.Positions = append(rec.Positions, v)

		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objmesh: line %d: bad normal: %w", line, err)
			}
			rec.Normals = append(rec.Normals, v)

		case "vt":
			// Only the first two components are read; a third, if present,
			// is discarded.
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objmesh: line %d: bad texture coordinate: %w", line, err)
			}
			rec.UVs = append(rec.UVs, uv)

		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objmesh: line %d: %w", line, err)
			}
			rec.Faces = append(rec.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objmesh: could not read mesh data: %w", err)
	}

	return rec, nil
}

func parseVec3(fields []string) ([3]float32, error) {
	var v [3]float32
	if len(fields) < 3 {
		return v, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	// Extra fields (per-vertex color extensions) are ignored.
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(fields []string) ([2]float32, error) {
	var v [2]float32
	if len(fields) < 2 {
		return v, fmt.Errorf("expected at least 2 components, got %d", len(fields))
	}
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseFace(fields []string) (Face, error) {
	var face Face
	if len(fields) != 3 {
		return face, fmt.Errorf("%d corners: %w", len(fields), ErrUnsupportedFace)
	}
	for i, s := range fields {
		corner, err := parseCorner(s)
		if err != nil {
			return face, err
		}
		face[i] = corner
	}
	return face, nil
}

// parseCorner parses a single p/t/n face corner. Every corner must carry all
// three indices; an omitted texture coordinate or normal index counts as
// missing data for that category.
func parseCorner(s string) (Corner, error) {
	parts := strings.Split(s, "/")

	if len(parts) < 2 || parts[1] == "" {
		return Corner{}, &MissingDataError{Category: CategoryUVs}
	}
	if len(parts) < 3 || parts[2] == "" {
		return Corner{}, &MissingDataError{Category: CategoryNormals}
	}

	p, err := parseIndex(parts[0], CategoryPositions)
	if err != nil {
		return Corner{}, err
	}
	t, err := parseIndex(parts[1], CategoryUVs)
	if err != nil {
		return Corner{}, err
	}
	n, err := parseIndex(parts[2], CategoryNormals)
	if err != nil {
		return Corner{}, err
	}

	return Corner{Position: p, UV: t, Normal: n}, nil
}

// parseIndex converts a 1-based OBJ index into a 0-based table index.
// Zero and negative (relative) indices are rejected.
func parseIndex(s, category string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s index %q: %w", category, s, err)
	}
	if n < 1 {
		return 0, &InvalidIndexError{Category: category, Index: n - 1, Count: 0}
	}
	return n - 1, nil
}
