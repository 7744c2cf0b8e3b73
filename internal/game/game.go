// Package game runs a demo scene in a window.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/deepv/internal/config"
	"github.com/Faultbox/deepv/internal/demos"
	"github.com/Faultbox/deepv/internal/engine/camera"
	"github.com/Faultbox/deepv/internal/engine/clock"
	"github.com/Faultbox/deepv/internal/engine/input"
	"github.com/Faultbox/deepv/internal/engine/renderer"
	"github.com/Faultbox/deepv/internal/engine/scene"
	"github.com/Faultbox/deepv/internal/engine/screenshot"
	"github.com/Faultbox/deepv/internal/engine/window"
	"github.com/Faultbox/deepv/internal/logger"
)

// Game owns the window, the renderer and the running scene.
type Game struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	orbit    *input.Orbit
	clock    *clock.Clock
	scene    *scene.Scene
	shots    *screenshot.Capture

	captureNext bool
}

// New builds the configured demo and opens its window.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing demo",
		zap.String("demo", cfg.Scene.Demo),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// scene first so a bad demo name fails before a window opens
	var err error
	g.scene, err = demos.Build(cfg.Scene.Demo, cfg)
	if err != nil {
		return nil, err
	}

	g.window, err = window.New(window.Config{
		Title:      fmt.Sprintf("%s - %s", cfg.Window.Title, cfg.Scene.Demo),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context of the window
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		LightSlots: cfg.Scene.LightSlots,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := g.scene.Resize(width, height); err != nil {
		g.Close()
		return nil, err
	}

	orbit := camera.NewOrbitCamera()
	orbit.LookFrom(g.scene.Camera.EyePosition())
	g.orbit = input.NewOrbit(orbit)
	g.input = input.New()

	g.clock = clock.New()
	g.clock.Step = cfg.Scene.Step
	g.clock.MaxDelta = cfg.Scene.MaxDelta
	g.shots = screenshot.New(cfg.Window.ScreenshotDir, cfg.Scene.Demo)

	g.log.Info("demo initialized", zap.Int("pawns", len(g.scene.Pawns())))
	return g, nil
}

// Run drives the loop until the window closes or a frame fails.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting loop")
	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}
		if err := g.handleEvents(); err != nil {
			return err
		}

		if delta, ok := g.clock.Tick(); ok {
			if err := g.scene.UpdateAnimations(delta); err != nil {
				return fmt.Errorf("update error: %w", err)
			}
		}

		g.renderer.Begin(g.scene.ClearColor)
		if err := g.scene.Draw(g.renderer); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if g.captureNext {
			g.captureNext = false
			g.capture()
		}
		g.window.SwapBuffers()

		frameCount++
		if g.config.Scene.ShowFPS && time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			g.window.SetTitle(fmt.Sprintf("%s - %s (%d fps)", g.config.Window.Title, g.config.Scene.Demo, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (g *Game) handleEvents() error {
	moved := false
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := g.window.DrawableSize()
			g.renderer.Resize(width, height)
			if err := g.scene.Resize(width, height); err != nil {
				g.log.Warn("ignoring resize", zap.Error(err))
			}
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F12:
				g.captureNext = true
			}
		}
		if g.orbit.Handle(event) {
			moved = true
		}
	}
	if moved {
		if err := g.orbit.Camera.Apply(g.scene.Camera); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
	}
	return nil
}

// capture saves the back buffer before it is presented.
func (g *Game) capture() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.shots.SaveRGBA(pixels, width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and the window.
func (g *Game) Close() {
	g.log.Info("closing demo")
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
