package parallax

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/engine/tween"
)

func TestMapRange(t *testing.T) {
	tests := []struct {
		name                         string
		inMin, inMax, outMin, outMax float32
		v, want                      float32
	}{
		{"start", 0, 1000, 0.2, -0.2, 0, 0.2},
		{"end", 0, 1000, 0.2, -0.2, 1000, -0.2},
		{"middle", 0, 1000, 0.2, -0.2, 500, 0},
		{"quarter", 0, 100, 0, 10, 25, 2.5},
		{"extrapolate", 0, 100, 0, 10, 200, 20},
		{"empty range", 5, 5, 1, 2, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MapRange(tt.inMin, tt.inMax, tt.outMin, tt.outMax, tt.v), 1e-6)
		})
	}
}

func TestTarget(t *testing.T) {
	p := New(DefaultConfig(), &scene.Rotation{}, tween.NewTimeline())

	yaw, pitch := p.Target(0, 0, 1000, 500)
	assert.InDelta(t, 0.2, yaw, 1e-6)
	assert.InDelta(t, 0.2, pitch, 1e-6)

	yaw, _ = p.Target(1000, 0, 1000, 500)
	assert.InDelta(t, -0.2, yaw, 1e-6)

	// Pitch is normalized by width, so the bottom edge of a wide viewport
	// only reaches the middle of the range.
	_, pitch = p.Target(0, 500, 1000, 500)
	assert.InDelta(t, 0, pitch, 1e-6)
}

func TestTargetPitchUsesHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PitchUsesHeight = true
	p := New(cfg, &scene.Rotation{}, tween.NewTimeline())

	_, pitch := p.Target(0, 500, 1000, 500)
	assert.InDelta(t, -0.2, pitch, 1e-6)
}

func TestMoveReachesTargetAfterDuration(t *testing.T) {
	rot := &scene.Rotation{}
	tl := tween.NewTimeline()
	p := New(DefaultConfig(), rot, tl)

	p.Move(0, 0, 1000, 1000)
	assert.Equal(t, 2, tl.Len())

	tl.Step(250 * time.Millisecond)
	assert.Greater(t, rot.Y, float32(0))
	assert.Less(t, rot.Y, float32(0.2))

	tl.Step(250 * time.Millisecond)
	assert.InDelta(t, 0.2, rot.Y, 1e-6)
	assert.InDelta(t, 0.2, rot.X, 1e-6)
	assert.Zero(t, tl.Len())
}

func TestMoveSupersedes(t *testing.T) {
	rot := &scene.Rotation{}
	tl := tween.NewTimeline()
	p := New(DefaultConfig(), rot, tl)

	p.Move(0, 0, 1000, 1000)
	tl.Step(100 * time.Millisecond)
	mid := rot.Y

	p.Move(1000, 1000, 1000, 1000)
	assert.Equal(t, 2, tl.Len(), "one tween per axis")
	assert.Equal(t, mid, rot.Y, "new tween starts from current value")

	tl.Step(500 * time.Millisecond)
	assert.InDelta(t, -0.2, rot.Y, 1e-6)
	assert.InDelta(t, -0.2, rot.X, 1e-6)
}

func TestMoveIgnoresEmptyViewport(t *testing.T) {
	rot := &scene.Rotation{}
	tl := tween.NewTimeline()
	p := New(DefaultConfig(), rot, tl)

	p.Move(10, 10, 0, 0)
	assert.Zero(t, tl.Len())
}
