// Package render owns the GL-facing side of block drawing: asset loading,
// per-variant shader programs and the draw loop that consumes block views.
package render

import (
	"embed"
	"fmt"
	"image/color"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"voxgfx/internal/graphics"
	"voxgfx/pkg/objmesh"
)

//go:embed mesh/*.obj
var meshFS embed.FS

// Source is the production asset source: block meshes ship embedded in the
// binary, textures load from a directory on disk. One Source serves the
// whole registry construction; all loads are cached.
type Source struct {
	log        *zap.Logger
	textureDir string

	mu     sync.Mutex
	meshes map[string]*objmesh.Mesh

	cubeOnce sync.Once
	cube     *objmesh.Mesh

	fallbackOnce sync.Once
	fallback     graphics.TextureHandle
}

// NewSource creates an asset source reading textures from textureDir.
func NewSource(textureDir string, log *zap.Logger) *Source {
	return &Source{
		log:        log,
		textureDir: textureDir,
		meshes:     make(map[string]*objmesh.Mesh),
	}
}

// Mesh loads the named embedded mesh, parsing it on first use.
func (s *Source) Mesh(name string) (*objmesh.Mesh, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.meshes[name]; ok {
		return m, nil
	}

	f, err := meshFS.Open("mesh/" + name + ".obj")
	if err != nil {
		return nil, fmt.Errorf("no embedded mesh %q: %w", name, err)
	}
	defer f.Close()

	m, err := objmesh.Load(f)
	if err != nil {
		return nil, fmt.Errorf("could not load mesh %q: %w", name, err)
	}

	s.meshes[name] = m
	return m, nil
}

// UnitCube returns the shared full-cell cube. Every call returns the same
// mesh pointer, so kinds built from it share one GPU buffer set.
func (s *Source) UnitCube() *objmesh.Mesh {
	s.cubeOnce.Do(func() {
		s.cube = objmesh.UnitCube()
	})
	return s.cube
}

// Texture resolves a named texture to a GL handle. A missing or broken file
// is not fatal: the source logs a warning and substitutes a checkerboard so
// the scene stays debuggable.
func (s *Source) Texture(name string) (graphics.TextureHandle, error) {
	path := filepath.Join(s.textureDir, name+".png")
	tex, err := graphics.GetTexture(path)
	if err == nil {
		return tex, nil
	}

	s.log.Warn("texture unavailable, using checkerboard",
		zap.String("texture", name),
		zap.String("path", path),
		zap.Error(err),
	)

	s.fallbackOnce.Do(func() {
		img := graphics.Checkerboard(64, 8,
			color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
			color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		)
		s.fallback = graphics.UploadImage(img)
	})
	return s.fallback, nil
}
