package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseEndpoints(t *testing.T) {
	for name, e := range eases {
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
	}
}

func TestPower1OutDecelerates(t *testing.T) {
	// Ease-out covers more than half the distance in the first half.
	assert.Greater(t, Power1Out(0.5), 0.5)
	assert.InDelta(t, 0.75, Power1Out(0.5), 1e-9)
}

func TestEaseByName(t *testing.T) {
	e, err := EaseByName("power1.out")
	require.NoError(t, err)
	assert.InDelta(t, Power1Out(0.3), e(0.3), 1e-9)

	e, err = EaseByName("")
	require.NoError(t, err)
	assert.InDelta(t, Power1Out(0.3), e(0.3), 1e-9)

	_, err = EaseByName("bounce.wobble")
	assert.Error(t, err)
}

func TestTweenReachesTarget(t *testing.T) {
	v := float32(0)
	tw := New(&v, 1, 500*time.Millisecond, Linear)

	assert.False(t, tw.Step(250*time.Millisecond))
	assert.InDelta(t, 0.5, v, 1e-6)

	assert.True(t, tw.Step(300*time.Millisecond))
	assert.Equal(t, float32(1), v)
}

func TestTweenZeroDurationJumps(t *testing.T) {
	v := float32(3)
	tw := New(&v, -1, 0, nil)
	assert.True(t, tw.Step(0))
	assert.Equal(t, float32(-1), v)
}

func TestTimelineSupersedes(t *testing.T) {
	tl := NewTimeline()
	v := float32(0)

	tl.To(&v, 1, time.Second, Linear)
	tl.Step(500 * time.Millisecond)
	require.InDelta(t, 0.5, v, 1e-6)

	// New target starts from the current value, not the old origin.
	tl.To(&v, -1, time.Second, Linear)
	assert.Equal(t, 1, tl.Len())
	tl.Step(500 * time.Millisecond)
	assert.InDelta(t, -0.25, v, 1e-6)

	tl.Step(time.Second)
	assert.Equal(t, float32(-1), v)
	assert.False(t, tl.Running(&v))
	assert.Equal(t, 0, tl.Len())
}

func TestTimelineIndependentProperties(t *testing.T) {
	tl := NewTimeline()
	x, y := float32(0), float32(0)

	tl.To(&x, 1, time.Second, Linear)
	tl.To(&y, 2, 2*time.Second, Linear)
	tl.Step(time.Second)

	assert.Equal(t, float32(1), x)
	assert.InDelta(t, 1, y, 1e-6)
	assert.False(t, tl.Running(&x))
	assert.True(t, tl.Running(&y))
}
