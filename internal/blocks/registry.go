package blocks

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxgfx/internal/graphics"
	"voxgfx/pkg/objmesh"
)

// Kind identifies a block type, e.g. "stone".
type Kind string

// KindResources is the shared rendering state owned by one block kind:
// meshes, texture handle, the precomputed shader variant and the base tint.
// It is built exactly once at registry construction and is immutable
// afterwards, so arbitrarily many concurrent view computations may read it
// without synchronization.
type KindResources struct {
	Kind Kind
	View ViewKind

	// Primitive is the geometry of shared-primitive views. Kinds requesting
	// the same shared primitive hold the identical mesh pointer.
	Primitive *objmesh.Mesh

	// Meshes are the named sub-meshes of custom views.
	Meshes map[string]*objmesh.Mesh

	Texture graphics.TextureHandle
	Variant graphics.Variant
	Tint    mgl32.Vec3

	custom CustomViewFunc
}

// CustomViewFunc assembles the per-frame drawable of a custom view from
// instance state and the kind's cached resources.
type CustomViewFunc func(in *Instance, now time.Time) DrawableView

// AssetSource provides the assets kind constructors need. Implementations
// must return the identical mesh pointer from UnitCube on every call so
// kinds requesting the shared full-cube primitive reuse one Mesh.
type AssetSource interface {
	// Mesh loads a named mesh.
	Mesh(name string) (*objmesh.Mesh, error)

	// Texture resolves a named texture to a handle.
	Texture(name string) (graphics.TextureHandle, error)

	// UnitCube returns the shared unit cube primitive.
	UnitCube() *objmesh.Mesh
}

// Definition is one row of the static block registration table: how to build
// the kind's shared resources and how to construct an instance from generic
// placement data.
type Definition struct {
	Build       func(src AssetSource) (*KindResources, error)
	NewInstance func(p Placement) Instance
}

// Registry maps every known block kind to its KindResources. The set of
// kinds is closed at construction; there is no runtime registration.
type Registry struct {
	resources map[Kind]*KindResources
	defs      map[Kind]Definition
}

// NewRegistry eagerly builds the resources of every kind in defs. A build
// failure aborts construction; no partial registry is returned.
func NewRegistry(src AssetSource, defs map[Kind]Definition) (*Registry, error) {
	r := &Registry{
		resources: make(map[Kind]*KindResources, len(defs)),
		defs:      defs,
	}
	for kind, def := range defs {
		res, err := def.Build(src)
		if err != nil {
			return nil, fmt.Errorf("blocks: could not build resources for kind %q: %w", kind, err)
		}
		res.Kind = kind
		r.resources[kind] = res
	}
	return r, nil
}

// ResourcesFor returns the non-owning resources reference for a kind.
//
// Looking up a kind that was never registered is a registration bug, not a
// runtime condition, and panics with a descriptive message.
func (r *Registry) ResourcesFor(kind Kind) *KindResources {
	res, ok := r.resources[kind]
	if !ok {
		panic(fmt.Sprintf("blocks: kind %q was never registered", kind))
	}
	return res
}

// NewInstance constructs a placed-block instance of the given kind and wires
// its resources reference. Like ResourcesFor, an unknown kind panics.
func (r *Registry) NewInstance(kind Kind, p Placement) Instance {
	def, ok := r.defs[kind]
	if !ok {
		panic(fmt.Sprintf("blocks: kind %q was never registered", kind))
	}
	in := def.NewInstance(p)
	in.res = r.ResourcesFor(kind)
	return in
}

// Kinds lists the registered kinds in stable order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.resources))
	for k := range r.resources {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
