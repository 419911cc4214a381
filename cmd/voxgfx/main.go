package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"voxgfx/internal/blocks"
	"voxgfx/internal/config"
	"voxgfx/internal/graphics"
	"voxgfx/internal/logger"
	"voxgfx/internal/render"
)

func init() { runtime.LockOSThread() }

// placedBlock pairs an instance with the world position of its cell.
type placedBlock struct {
	instance blocks.Instance
	origin   mgl32.Vec3
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	closer.Bind(logger.Sync)
	log := logger.Log

	if err := run(cfg, log); err != nil {
		log.Error("fatal", zap.Error(err))
		closer.Close()
		os.Exit(1)
	}
	closer.Close()
}

func run(cfg *config.Config, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not init glfw: %w", err)
	}
	closer.Bind(glfw.Terminate)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Graphics.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	window, err := glfw.CreateWindow(cfg.Graphics.Width, cfg.Graphics.Height, "voxgfx", monitor, nil)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not init gl: %w", err)
	}
	log.Info("gl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	pipeline, err := render.NewPipeline(log)
	if err != nil {
		return err
	}
	closer.Bind(pipeline.Delete)

	src := render.NewSource(cfg.Assets.TextureDir, log)
	registry, err := blocks.NewRegistry(src, blocks.Definitions())
	if err != nil {
		return err
	}
	log.Info("block registry ready", zap.Int("kinds", len(registry.Kinds())))

	scene := demoScene(registry)

	camera := graphics.NewCamera(cfg.Graphics.Width, cfg.Graphics.Height)
	camera.FOV = cfg.Graphics.FOV
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		camera.SetViewport(w, h)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	lighting := graphics.DefaultLighting()
	start := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		t := now.Sub(start).Seconds()

		// Pushers extend and retract on a two second cycle.
		extended := int(t)%4 < 2
		for i := range scene {
			if scene[i].instance.Kind() != blocks.KindPusher {
				continue
			}
			if extended {
				scene[i].instance.State |= blocks.PusherExtended
			} else {
				scene[i].instance.State &^= blocks.PusherExtended
			}
		}

		angle := t * 0.3
		camera.Position = mgl32.Vec3{
			float32(7 * math.Cos(angle)),
			float32(7 * math.Sin(angle)),
			4,
		}
		camera.Target = mgl32.Vec3{0, 0, 0.5}

		pipeline.Begin(camera.GetViewMatrix(), camera.GetProjectionMatrix(), lighting)
		for i := range scene {
			pipeline.Draw(scene[i].instance.View(now), scene[i].origin)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

// demoScene places a small showcase: a stone floor, a weathered sand wall,
// two pushers and a beacon.
func demoScene(registry *blocks.Registry) []placedBlock {
	var scene []placedBlock

	place := func(kind blocks.Kind, p blocks.Placement, x, y, z float32) {
		scene = append(scene, placedBlock{
			instance: registry.NewInstance(kind, p),
			origin:   mgl32.Vec3{x, y, z},
		})
	}

	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			place(blocks.KindStone, blocks.Placement{}, float32(x), float32(y), 0)
		}
	}

	for i, damage := range []uint8{0, 60, 120, 200, 255} {
		in := registry.NewInstance(blocks.KindSand, blocks.Placement{})
		in.Damage = damage
		scene = append(scene, placedBlock{
			instance: in,
			origin:   mgl32.Vec3{float32(i - 2), 3, 1},
		})
	}

	place(blocks.KindPusher, blocks.Placement{}, -2, -2, 0.5)
	place(blocks.KindPusher, blocks.Placement{Orientation: 1}, 2, -2, 0.5)
	place(blocks.KindBeacon, blocks.Placement{}, 0, 0, 1)

	return scene
}
