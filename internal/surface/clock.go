package surface

import "time"

// WallClock measures real time from its creation.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a clock now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Elapsed implements Clock.
func (c *WallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}
