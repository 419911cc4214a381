package blocks

import (
	"errors"
	"strings"
	"testing"

	"voxgfx/internal/graphics"
	"voxgfx/pkg/objmesh"
)

// stubSource serves the unit cube for every mesh name and counts texture
// resolutions. UnitCube returns one mesh pointer for the whole stub, matching
// the AssetSource contract.
type stubSource struct {
	cube       *objmesh.Mesh
	meshErr    error
	textureErr error
	textures   map[string]int
}

func newStubSource() *stubSource {
	return &stubSource{
		cube:     objmesh.UnitCube(),
		textures: make(map[string]int),
	}
}

func (s *stubSource) Mesh(name string) (*objmesh.Mesh, error) {
	if s.meshErr != nil {
		return nil, s.meshErr
	}
	return s.cube, nil
}

func (s *stubSource) Texture(name string) (graphics.TextureHandle, error) {
	if s.textureErr != nil {
		return 0, s.textureErr
	}
	s.textures[name]++
	return graphics.TextureHandle(len(s.textures)), nil
}

func (s *stubSource) UnitCube() *objmesh.Mesh {
	return s.cube
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(newStubSource(), Definitions())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func TestInstancesShareKindResources(t *testing.T) {
	r := newTestRegistry(t)

	a := r.NewInstance(KindStone, Placement{})
	b := r.NewInstance(KindStone, Placement{Orientation: 2})

	if a.Resources() != b.Resources() {
		t.Fatal("two stone instances hold different KindResources pointers")
	}
	if a.Resources() != r.ResourcesFor(KindStone) {
		t.Fatal("instance resources differ from registry lookup")
	}
}

func TestSharedPrimitiveIsOneMeshAcrossKinds(t *testing.T) {
	r := newTestRegistry(t)

	stone := r.ResourcesFor(KindStone).Primitive
	sand := r.ResourcesFor(KindSand).Primitive
	beacon := r.ResourcesFor(KindBeacon).Primitive

	if stone == nil {
		t.Fatal("stone has no primitive mesh")
	}
	if stone != sand || stone != beacon {
		t.Fatal("kinds using the unit cube do not share one mesh pointer")
	}
}

func TestInstanceStateIsIsolated(t *testing.T) {
	r := newTestRegistry(t)

	a := r.NewInstance(KindSand, Placement{})
	b := r.NewInstance(KindSand, Placement{})
	a.Damage = 200

	if b.Damage != 0 {
		t.Fatalf("damaging one instance leaked into another: got %d", b.Damage)
	}
	if r.ResourcesFor(KindSand).Tint != b.Resources().Tint {
		t.Fatal("shared tint changed by instance damage")
	}
}

func TestUnregisteredKindPanics(t *testing.T) {
	r := newTestRegistry(t)

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("lookup of unregistered kind did not panic")
		}
		msg, ok := v.(string)
		if !ok || !strings.Contains(msg, "never registered") {
			t.Fatalf("unexpected panic value: %v", v)
		}
	}()
	r.ResourcesFor("granite")
}

func TestBuildFailureAbortsRegistry(t *testing.T) {
	src := newStubSource()
	src.textureErr = errors.New("texture store offline")

	r, err := NewRegistry(src, Definitions())
	if err == nil {
		t.Fatal("expected construction error")
	}
	if r != nil {
		t.Fatal("partial registry returned alongside error")
	}
	if !strings.Contains(err.Error(), "texture store offline") {
		t.Fatalf("cause not wrapped: %v", err)
	}
}

func TestKindsAreSorted(t *testing.T) {
	r := newTestRegistry(t)

	kinds := r.Kinds()
	if len(kinds) != len(Definitions()) {
		t.Fatalf("Kinds returned %d kinds, want %d", len(kinds), len(Definitions()))
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1] >= kinds[i] {
			t.Fatalf("kinds not in ascending order: %v", kinds)
		}
	}
}
