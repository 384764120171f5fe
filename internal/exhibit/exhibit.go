// Package exhibit implements the switchable particle exhibits: one loaded mesh
// each, shown as an animated point cloud, at most one visible at a time.
package exhibit

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/particle-exhibits/internal/assets"
	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
	"github.com/Faultbox/particle-exhibits/internal/engine/particles"
	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/logger"
)

// ErrAssetLoad wraps every failure to load or sample an exhibit's mesh.
var ErrAssetLoad = errors.New("asset load failed")

// Loader fetches mesh geometry. Implementations must be safe to call from
// a goroutine other than the render thread.
type Loader interface {
	Load(ctx context.Context, path string) (*assets.Mesh, error)
}

// LoadState is the asset loading state of an exhibit.
type LoadState int

const (
	StatePending LoadState = iota
	StateLoaded
	StateFailed
	StateCancelled
)

func (s LoadState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// Config is the fixed configuration of one exhibit.
type Config struct {
	Name       string
	File       string
	Color1     palette.Color
	Color2     palette.Color
	Background palette.Color

	// PlaceOnLoad shows the exhibit as soon as its mesh is ready, unless
	// Add or Remove was called first.
	PlaceOnLoad bool

	Particles int
	PointSize float32
	Seed      uint64
}

// Exhibit owns one mesh, its particle material and its visibility.
//
// All methods must be called from the render thread. Loading runs on its own
// goroutine and only hands back a result; Poll applies it.
type Exhibit struct {
	cfg      Config
	scene    *scene.Scene
	material *particles.Material
	points   *particles.Points

	active  bool
	touched bool // Add or Remove was called; suppresses PlaceOnLoad

	state   LoadState
	err     error
	gen     uint64
	pending *future

	log *zap.Logger
}

// New creates an exhibit. Nothing is loaded until Start.
func New(cfg Config, sc *scene.Scene) *Exhibit {
	return &Exhibit{
		cfg:      cfg,
		scene:    sc,
		material: particles.NewMaterial(cfg.Color1, cfg.Color2, cfg.PointSize),
		state:    StatePending,
		log:      logger.Named("exhibit").With(zap.String("exhibit", cfg.Name)),
	}
}

// Name returns the exhibit's identity.
func (e *Exhibit) Name() string { return e.cfg.Name }

// File returns the asset path.
func (e *Exhibit) File() string { return e.cfg.File }

// Background returns the clear color associated with the exhibit.
func (e *Exhibit) Background() palette.Color { return e.cfg.Background }

// PlaceOnLoad reports whether the exhibit shows itself once loaded.
func (e *Exhibit) PlaceOnLoad() bool { return e.cfg.PlaceOnLoad }

// Material exposes the particle material so the frame loop can write uTime.
func (e *Exhibit) Material() *particles.Material { return e.material }

// Points returns the particle node, or nil before the first successful load.
func (e *Exhibit) Points() *particles.Points { return e.points }

// IsActive reports the requested visibility. While the mesh is loading this
// can be true without anything attached; see Attached.
func (e *Exhibit) IsActive() bool { return e.active }

// Attached reports whether the particle node is in the scene.
func (e *Exhibit) Attached() bool {
	return e.points != nil && e.scene.Contains(e.points)
}

// State returns the load state.
func (e *Exhibit) State() LoadState { return e.state }

// Err returns the load error when State is StateFailed.
func (e *Exhibit) Err() error { return e.err }

// Add shows the exhibit. Before the mesh is ready the attach is deferred to
// Poll. A failed exhibit stays hidden.
func (e *Exhibit) Add() {
	e.touched = true
	if e.state == StateFailed {
		e.log.Warn("add ignored, asset failed to load", zap.Error(e.err))
		return
	}
	if e.active {
		return
	}
	e.active = true
	if e.points != nil {
		e.scene.Attach(e.points)
	}
	e.log.Debug("added", zap.Stringer("state", e.state))
}

// Remove hides the exhibit.
func (e *Exhibit) Remove() {
	e.touched = true
	if !e.active {
		return
	}
	e.active = false
	if e.points != nil {
		e.scene.Detach(e.points)
	}
	e.log.Debug("removed")
}

// Start begins the asynchronous load. Equivalent to Reload.
func (e *Exhibit) Start(ctx context.Context, loader Loader) {
	e.Reload(ctx, loader)
}

// Reload starts a new load, cancelling any load still in flight. The
// superseded load's result is never applied.
func (e *Exhibit) Reload(ctx context.Context, loader Loader) {
	if e.pending != nil {
		e.pending.cancel()
	}
	e.gen++
	e.state = StatePending
	e.err = nil
	e.pending = startLoad(ctx, e.gen, loader, e.cfg)
	e.log.Debug("load started", zap.String("file", e.cfg.File), zap.Uint64("generation", e.gen))
}

// Loading reports whether a load is in flight.
func (e *Exhibit) Loading() bool {
	return e.pending != nil
}

// Poll applies a finished load, if any. Returns true when a result was applied.
func (e *Exhibit) Poll() bool {
	f := e.pending
	if f == nil || !f.ready() {
		return false
	}
	e.pending = nil
	f.cancel()

	if f.gen != e.gen {
		e.log.Debug("stale load discarded", zap.Uint64("generation", f.gen))
		return false
	}
	e.apply(f.result)
	return true
}

// Close cancels any load in flight and detaches the exhibit.
func (e *Exhibit) Close() {
	if e.pending != nil {
		e.pending.cancel()
		e.pending = nil
		e.state = StateCancelled
	}
	e.gen++
	if e.points != nil {
		e.scene.Detach(e.points)
	}
	e.active = false
}

func (e *Exhibit) apply(res result) {
	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			e.state = StateCancelled
			e.log.Debug("load cancelled")
			return
		}
		e.state = StateFailed
		e.err = fmt.Errorf("exhibit %q: %w: %w", e.cfg.Name, ErrAssetLoad, res.err)
		if e.points != nil {
			e.scene.Detach(e.points)
		}
		e.points = nil
		e.active = false
		e.log.Error("load failed", zap.Error(res.err))
		return
	}

	old := e.points
	e.points = particles.NewPoints(e.cfg.Name, res.positions, res.randoms, e.material)
	e.state = StateLoaded
	if old != nil {
		e.scene.Detach(old)
	}

	if e.cfg.PlaceOnLoad && !e.touched {
		e.active = true
	}
	if e.active {
		e.scene.Attach(e.points)
	}

	e.log.Info("loaded",
		zap.Int("particles", e.points.Count()),
		zap.Bool("active", e.active),
	)
}

// result is what a load goroutine hands back.
type result struct {
	positions []float32
	randoms   []float32
	err       error
}

// future is a single-assignment load result with its own cancellation.
type future struct {
	gen    uint64
	done   chan struct{}
	cancel context.CancelFunc
	result result
}

func (f *future) ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func startLoad(parent context.Context, gen uint64, loader Loader, cfg Config) *future {
	ctx, cancel := context.WithCancel(parent)
	f := &future{
		gen:    gen,
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(f.done)

		mesh, err := loader.Load(ctx, cfg.File)
		if err != nil {
			f.result.err = err
			return
		}
		if err := ctx.Err(); err != nil {
			f.result.err = err
			return
		}

		rng := rand.New(rand.NewPCG(cfg.Seed, nameSeed(cfg.Name)))
		f.result.positions, f.result.randoms, f.result.err = particles.Sample(mesh.Positions, mesh.Indices, cfg.Particles, rng)
	}()

	return f
}

func nameSeed(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}
