package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSetAspectUpdatesProjection(t *testing.T) {
	c := NewPerspective(50, 1, 0.1, 100)
	before := c.Projection()

	c.SetAspect(1920, 1080)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)
	assert.Equal(t, before, c.Projection(), "projection is stale until updated")

	c.UpdateProjectionMatrix()
	assert.NotEqual(t, before, c.Projection())
	assert.True(t, c.Projection().ApproxEqual(mgl32.Perspective(mgl32.DegToRad(50), 16.0/9.0, 0.1, 100)))
}

func TestSetAspectIgnoresZero(t *testing.T) {
	c := NewPerspective(50, 2, 0.1, 100)
	c.SetAspect(800, 0)
	c.SetAspect(0, 600)
	assert.Equal(t, float32(2), c.Aspect)
}

func TestViewTranslatesOrigin(t *testing.T) {
	c := NewPerspective(50, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 1, 5}

	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.True(t, p.ApproxEqual(mgl32.Vec4{0, -1, -5, 1}))
}

func TestOriginIsInFront(t *testing.T) {
	c := NewPerspective(50, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 1, 5}

	clip := c.Projection().Mul4(c.View()).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.True(t, ndc.Z() > -1 && ndc.Z() < 1, "origin inside clip range, got z=%f", ndc.Z())
	assert.Less(t, ndc.Y(), float32(0), "camera above origin sees it below center")
}
