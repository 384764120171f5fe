// Package app wires the window, renderer, UI and exhibits into the main loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/particle-exhibits/internal/assets"
	"github.com/Faultbox/particle-exhibits/internal/config"
	"github.com/Faultbox/particle-exhibits/internal/engine/audio"
	"github.com/Faultbox/particle-exhibits/internal/engine/debug"
	"github.com/Faultbox/particle-exhibits/internal/engine/input"
	"github.com/Faultbox/particle-exhibits/internal/engine/renderer"
	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/engine/ui2d"
	"github.com/Faultbox/particle-exhibits/internal/engine/window"
	"github.com/Faultbox/particle-exhibits/internal/exhibit"
	"github.com/Faultbox/particle-exhibits/internal/logger"
	"github.com/Faultbox/particle-exhibits/internal/surface"
)

// Volume keys change the ambience level by this much.
const volumeStep = 0.1

// App is the viewer instance.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	uiDraw   *ui2d.Renderer
	ui       *ui2d.Context
	input    *input.Input

	surface *surface.Surface
	library *assets.Library
	watcher *assets.Watcher
	shots   *debug.ScreenshotCapture

	audio    *audio.Player
	ambience map[string]string

	captureNext bool

	handCursor  *sdl.Cursor
	arrowCursor *sdl.Cursor
	overUI      bool

	cancel context.CancelFunc
	fps    int
	log    *zap.Logger
}

// New creates the window and GL resources and starts loading exhibits.
// A GL context that cannot be initialised yields renderer.ErrRenderContext.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("exhibits", len(cfg.Exhibits)),
	)

	sc := scene.New()
	exhibits, err := BuildExhibits(cfg, sc)
	if err != nil {
		return nil, err
	}
	sw, err := exhibit.NewSwitcher(exhibits...)
	if err != nil {
		return nil, err
	}
	surfCfg, err := SurfaceConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Window first, it owns the GL context
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Antialias:  cfg.Camera.Antialias,
	})
	if err != nil {
		return nil, windowError(err)
	}
	a.handCursor = sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_HAND)
	a.arrowCursor = sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_ARROW)

	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:     dw,
		Height:    dh,
		Antialias: cfg.Camera.Antialias,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ww, wh := a.window.GetSize()
	a.uiDraw, err = ui2d.New(ww, wh)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create ui: %w", err)
	}
	a.ui = ui2d.NewContext(a.uiDraw)
	a.input = input.New()
	a.shots = debug.NewScreenshotCapture(cfg.Window.ScreenshotDir, "exhibits")

	surfCfg.Width, surfCfg.Height = dw, dh
	a.surface = surface.New(surfCfg, sc, sw, a.renderer, surface.NewWallClock())

	if cfg.Audio.Enabled {
		a.startAudio()
	}

	a.library = assets.NewLibrary()
	if cfg.Assets.Watch {
		a.startWatcher(exhibits)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.surface.Start(ctx, a.library)

	a.playAmbience(string(sw.Current()))

	a.log.Info("viewer initialized", zap.String("selected", string(sw.Current())))
	return a, nil
}

func (a *App) startAudio() {
	a.ambience = AmbienceTracks(a.config)
	if len(a.ambience) == 0 {
		return
	}
	p := audio.New(a.config.Audio.Volume)
	if err := p.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
		return
	}
	a.audio = p
	a.log.Info("audio initialized", zap.Int("tracks", len(a.ambience)))
}

// playAmbience switches to the track of the named exhibit, or silence.
func (a *App) playAmbience(name string) {
	if a.audio == nil {
		return
	}
	if err := a.audio.Play(a.ambience[name]); err != nil {
		a.log.Warn("ambience failed", zap.String("exhibit", name), zap.Error(err))
	}
}

// windowError reports a missing GL context as renderer.ErrRenderContext.
func windowError(err error) error {
	if errors.Is(err, window.ErrGLContext) {
		return fmt.Errorf("failed to create window: %w: %w", renderer.ErrRenderContext, err)
	}
	return fmt.Errorf("failed to create window: %w", err)
}

func (a *App) startWatcher(exhibits []*exhibit.Exhibit) {
	paths := make([]string, 0, len(exhibits))
	for _, ex := range exhibits {
		paths = append(paths, ex.File())
	}
	w, err := assets.NewWatcher(paths)
	if err != nil {
		a.log.Warn("asset watching disabled", zap.Error(err))
		return
	}
	a.watcher = w
	a.log.Info("watching exhibit files", zap.Strings("paths", paths))
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.handleKeys()
		a.drainWatcher()

		a.surface.Tick()
		if a.captureNext {
			a.captureNext = false
			a.screenshot()
		}
		a.drawUI()
		a.updateCursor()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.fps = frameCount
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	in := a.ui.Input()
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.surface.Resize(a.window.DrawableSize())
			a.ui.Resize(event.Width, event.Height)

		case input.EventMouseMove:
			in.MouseX, in.MouseY = float32(event.MouseX), float32(event.MouseY)
			x, y := a.toDrawable(event.MouseX, event.MouseY)
			a.surface.Pointer(x, y)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				in.MouseX, in.MouseY = float32(event.MouseX), float32(event.MouseY)
				in.MouseLeftDown = true
				in.MouseLeftClicked = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				in.MouseLeftDown = false
			}

		case input.EventKeyDown:
			if i, ok := input.DigitIndex(event.Key); ok {
				exhibits := a.surface.Switcher().Exhibits()
				if i < len(exhibits) {
					a.selectExhibit(exhibits[i].Name())
				}
			}
		}
	}
}

// handleKeys applies the screenshot and ambience shortcuts.
func (a *App) handleKeys() {
	if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
		a.captureNext = true
	}
	if a.audio == nil {
		return
	}
	switch {
	case a.input.IsKeyPressed(sdl.SCANCODE_M):
		a.log.Info("ambience", zap.Bool("paused", a.audio.TogglePause()))
	case a.input.IsKeyPressed(sdl.SCANCODE_MINUS):
		a.audio.SetVolume(a.audio.Volume() - volumeStep)
		a.log.Debug("volume", zap.Float64("level", a.audio.Volume()))
	case a.input.IsKeyPressed(sdl.SCANCODE_EQUALS):
		a.audio.SetVolume(a.audio.Volume() + volumeStep)
		a.log.Debug("volume", zap.Float64("level", a.audio.Volume()))
	}
}

// updateCursor shows a hand while the pointer is over a button.
func (a *App) updateCursor() {
	hot := a.ui.Hot()
	if hot == a.overUI || a.handCursor == nil || a.arrowCursor == nil {
		return
	}
	a.overUI = hot
	if hot {
		sdl.SetCursor(a.handCursor)
	} else {
		sdl.SetCursor(a.arrowCursor)
	}
}

// toDrawable converts window coordinates to framebuffer pixels.
func (a *App) toDrawable(x, y int) (float32, float32) {
	ww, wh := a.window.GetSize()
	dw, dh := a.surface.Size()
	if ww == 0 || wh == 0 {
		return float32(x), float32(y)
	}
	return float32(x) * float32(dw) / float32(ww), float32(y) * float32(dh) / float32(wh)
}

func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path := <-a.watcher.Changes():
			a.surface.AssetChanged(path)
		default:
			return
		}
	}
}

// screenshot saves the scene as rendered this frame, before the UI is drawn.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h, string(a.surface.Switcher().Current()))
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) selectExhibit(name string) {
	if err := a.surface.Select(name); err != nil {
		a.log.Warn("select failed", zap.String("exhibit", name), zap.Error(err))
		return
	}
	a.playAmbience(name)
}

// drawUI draws one button per exhibit and an optional status line.
func (a *App) drawUI() {
	sw := a.surface.Switcher()

	a.ui.Begin()
	a.ui.BeginBar("exhibits", 16, 16, 32)
	for _, ex := range sw.Exhibits() {
		if a.ui.Button(ex.Name(), DisplayName(ex.Name()), sw.Current() == exhibit.Selection(ex.Name())) {
			a.selectExhibit(ex.Name())
		}
	}
	if cur, ok := sw.Lookup(string(sw.Current())); ok {
		switch {
		case cur.Loading():
			a.ui.Label("loading...")
		case cur.State() == exhibit.StateFailed:
			a.ui.LabelColored("failed to load", ui2d.ColorHighlight)
		}
	}
	a.ui.EndBar()

	if a.config.Window.ShowFPS {
		_, h := a.window.GetSize()
		a.ui.BeginBar("status", 16, float32(h)-40, 26)
		a.ui.Label(fmt.Sprintf("%d fps", a.fps))
		if cur, ok := sw.Lookup(string(sw.Current())); ok && cur.Attached() {
			a.ui.Label(fmt.Sprintf("%d points", cur.Points().Count()))
		}
		a.ui.EndBar()
	}
	a.ui.End()
}

// Close cleans up resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.cancel != nil {
		a.cancel()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing watcher", zap.Error(err))
		}
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.surface != nil {
		a.surface.Close()
	}
	if a.uiDraw != nil {
		a.uiDraw.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.handCursor != nil {
		sdl.FreeCursor(a.handCursor)
	}
	if a.arrowCursor != nil {
		sdl.FreeCursor(a.arrowCursor)
	}
	if a.window != nil {
		a.window.Close()
	}

	if a.library != nil {
		hits, misses := a.library.Stats()
		a.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
	}
}
