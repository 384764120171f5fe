// Package surface owns the per-frame state of the viewer: scene, camera,
// exhibits and the tweens acting on them.
package surface

import (
	"context"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/particle-exhibits/internal/engine/camera"
	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/engine/tween"
	"github.com/Faultbox/particle-exhibits/internal/exhibit"
	"github.com/Faultbox/particle-exhibits/internal/logger"
	"github.com/Faultbox/particle-exhibits/internal/parallax"
)

// Renderer draws a scene through a camera.
type Renderer interface {
	Render(sc *scene.Scene, cam *camera.Perspective)
	Resize(width, height int)
}

// Clock reports time since the surface started.
type Clock interface {
	Elapsed() time.Duration
}

// Invalidator is implemented by loaders that cache decoded assets.
type Invalidator interface {
	Invalidate(path string)
}

// Config holds camera and animation settings.
type Config struct {
	FOV      float32 // Vertical, degrees
	Near     float32
	Far      float32
	Position mgl32.Vec3

	Width  int
	Height int

	Parallax           parallax.Config
	BackgroundDuration time.Duration
}

// DefaultConfig returns the stock camera: 50 degrees, 0.1 to 100, at (0, 1, 5).
func DefaultConfig() Config {
	return Config{
		FOV:                50,
		Near:               0.1,
		Far:                100,
		Position:           mgl32.Vec3{0, 1, 5},
		Width:              1280,
		Height:             720,
		Parallax:           parallax.DefaultConfig(),
		BackgroundDuration: 500 * time.Millisecond,
	}
}

// Surface ties the scene to a renderer and drives it once per frame.
type Surface struct {
	cfg      Config
	scene    *scene.Scene
	camera   *camera.Perspective
	switcher *exhibit.Switcher
	parallax *parallax.Parallax
	timeline *tween.Timeline
	renderer Renderer
	clock    Clock

	ctx    context.Context
	loader exhibit.Loader

	// Background fade progress from fadeFrom (0) to fadeTo (1).
	fade     float32
	fadeFrom palette.Color
	fadeTo   palette.Color
	fading   bool

	last   time.Duration
	width  int
	height int
	log    *zap.Logger
}

// New creates a surface. The scene background starts at the current
// selection's background.
func New(cfg Config, sc *scene.Scene, sw *exhibit.Switcher, r Renderer, clock Clock) *Surface {
	cam := camera.NewPerspective(cfg.FOV, 1, cfg.Near, cfg.Far)
	cam.Position = cfg.Position

	tl := tween.NewTimeline()
	s := &Surface{
		cfg:      cfg,
		scene:    sc,
		camera:   cam,
		switcher: sw,
		parallax: parallax.New(cfg.Parallax, &sc.Rotation, tl),
		timeline: tl,
		renderer: r,
		clock:    clock,
		ctx:      context.Background(),
		log:      logger.Named("surface"),
	}

	if ex, ok := sw.Lookup(string(sw.Current())); ok {
		sc.Background = ex.Background()
	}

	s.Resize(cfg.Width, cfg.Height)
	return s
}

// Start begins loading every exhibit. ctx bounds all loads and reloads.
func (s *Surface) Start(ctx context.Context, loader exhibit.Loader) {
	s.ctx = ctx
	s.loader = loader
	for _, ex := range s.switcher.Exhibits() {
		ex.Start(ctx, loader)
	}
}

// Tick runs one frame: apply finished loads, advance tweens, render, then
// publish the elapsed time to the active exhibits.
func (s *Surface) Tick() {
	now := s.clock.Elapsed()
	dt := now - s.last
	if dt < 0 {
		dt = 0
	}
	s.last = now

	s.switcher.Poll()

	s.timeline.Step(dt)
	if s.fading {
		s.scene.Background = s.fadeFrom.Lerp(s.fadeTo, s.fade)
		s.fading = s.timeline.Running(&s.fade)
	}
	s.renderer.Render(s.scene, s.camera)

	t := float32(now.Seconds())
	for _, ex := range s.switcher.Active() {
		ex.Material().SetTime(t)
	}
}

// Resize updates the camera aspect and the renderer viewport. Zero sizes
// (minimized windows) are ignored.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.camera.SetAspect(width, height)
	s.camera.UpdateProjectionMatrix()
	s.renderer.Resize(width, height)
}

// Pointer retargets the parallax for a pointer at x, y in viewport space.
func (s *Surface) Pointer(x, y float32) {
	s.parallax.Move(x, y, s.width, s.height)
}

// Select shows the named exhibit and fades the background toward its color.
func (s *Surface) Select(name string) error {
	prev := s.switcher.Current()
	if err := s.switcher.Select(name); err != nil {
		return err
	}
	if prev == exhibit.Selection(name) {
		return nil
	}

	ex, _ := s.switcher.Lookup(name)
	s.fadeFrom = s.scene.Background
	s.fadeTo = ex.Background()
	s.fade = 0
	s.fading = true
	s.timeline.To(&s.fade, 1, s.cfg.BackgroundDuration, tween.Power1Out)
	return nil
}

// AssetChanged drops the cached mesh for path and reloads every exhibit
// drawn from it.
func (s *Surface) AssetChanged(path string) {
	if s.loader == nil {
		return
	}
	if inv, ok := s.loader.(Invalidator); ok {
		inv.Invalidate(path)
	}

	clean := filepath.Clean(path)
	for _, ex := range s.switcher.Exhibits() {
		if filepath.Clean(ex.File()) != clean {
			continue
		}
		s.log.Info("reloading exhibit", zap.String("exhibit", ex.Name()), zap.String("file", path))
		ex.Reload(s.ctx, s.loader)
	}
}

// Scene returns the scene.
func (s *Surface) Scene() *scene.Scene { return s.scene }

// Camera returns the camera.
func (s *Surface) Camera() *camera.Perspective { return s.camera }

// Switcher returns the exhibit switcher.
func (s *Surface) Switcher() *exhibit.Switcher { return s.switcher }

// Size returns the viewport size.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Close cancels loads in flight.
func (s *Surface) Close() {
	s.switcher.Close()
}
