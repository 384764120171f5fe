// Package camera provides the perspective camera the exhibits are viewed through.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective is a fixed-position perspective camera looking down -Z.
type Perspective struct {
	FOV      float32 // Vertical field of view, degrees
	Aspect   float32
	Near     float32
	Far      float32
	Position mgl32.Vec3

	projection mgl32.Mat4
}

// NewPerspective creates a camera and computes its projection.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetAspect sets the aspect ratio from a viewport size. Zero heights are
// ignored (minimized windows report 0).
func (c *Perspective) SetAspect(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// UpdateProjectionMatrix recomputes the projection after FOV, Aspect, Near or
// Far change.
func (c *Perspective) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix.
func (c *Perspective) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the view matrix. The camera does not rotate, so this is the
// inverse of its translation.
func (c *Perspective) View() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
}
