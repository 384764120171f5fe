// Package renderer draws scenes of particle clouds with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/particle-exhibits/internal/engine/camera"
	"github.com/Faultbox/particle-exhibits/internal/engine/particles"
	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/engine/shader"
	"github.com/Faultbox/particle-exhibits/internal/logger"
)

// ErrRenderContext is returned when the GL context cannot be initialised.
var ErrRenderContext = errors.New("render context unavailable")

// Clouds not drawn for this many frames release their GPU buffers.
const evictAfterFrames = 600

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Antialias bool
}

// cloud is the GPU copy of a particles.Points node.
type cloud struct {
	vao       uint32
	positions uint32
	randoms   uint32
	count     int32
	lastFrame uint64
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	clouds  map[*particles.Points]*cloud
	frame   uint64
	log     *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		clouds: make(map[*particles.Points]*cloud),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderContext, err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// Additive points never write depth; order does not matter.
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	if cfg.Antialias {
		gl.Enable(gl.MULTISAMPLE)
	}

	var err error
	r.program, err = shader.New(pointsVertexShader, pointsFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("points shader: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("clouds", len(r.clouds)))
	for p := range r.clouds {
		r.release(p)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render clears to the scene background and draws every particle node.
func (r *Renderer) Render(sc *scene.Scene, cam *camera.Perspective) {
	r.frame++

	bg := sc.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("uModel", sc.ModelMatrix())
	r.program.SetMat4("uView", cam.View())
	r.program.SetMat4("uProjection", cam.Projection())

	for _, n := range sc.Nodes() {
		p, ok := n.(*particles.Points)
		if !ok || p.Count() == 0 {
			continue
		}
		c := r.upload(p)
		c.lastFrame = r.frame

		m := p.Material
		r.program.SetFloat("uTime", m.Time())
		r.program.SetFloat("uPointSize", m.PointSize)
		r.program.SetVec3("uColor1", m.Color1.Vec3())
		r.program.SetVec3("uColor2", m.Color2.Vec3())

		gl.BindVertexArray(c.vao)
		gl.DrawArrays(gl.POINTS, 0, c.count)
	}
	gl.BindVertexArray(0)

	r.evict()
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// upload returns the GPU buffers for p, creating them on first use.
func (r *Renderer) upload(p *particles.Points) *cloud {
	if c, ok := r.clouds[p]; ok {
		return c
	}

	c := &cloud{count: int32(p.Count())}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.Positions)*4, gl.Ptr(p.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &c.randoms)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.randoms)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.Randoms)*4, gl.Ptr(p.Randoms), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 4, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.clouds[p] = c
	r.log.Debug("uploaded cloud",
		zap.String("node", p.NodeName()),
		zap.Int32("points", c.count),
	)
	return c
}

func (r *Renderer) evict() {
	for p, c := range r.clouds {
		if r.frame-c.lastFrame > evictAfterFrames {
			r.release(p)
		}
	}
}

func (r *Renderer) release(p *particles.Points) {
	c := r.clouds[p]
	gl.DeleteBuffers(1, &c.positions)
	gl.DeleteBuffers(1, &c.randoms)
	gl.DeleteVertexArrays(1, &c.vao)
	delete(r.clouds, p)
}
