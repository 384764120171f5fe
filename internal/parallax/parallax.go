// Package parallax tilts the scene toward the pointer.
package parallax

import (
	"time"

	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/engine/tween"
)

// Config controls the rotation range and easing.
type Config struct {
	Range    float32 // Max rotation in radians either side of zero
	Duration time.Duration
	Ease     tween.Ease

	// PitchUsesHeight maps the vertical pointer position over the viewport
	// height. By default the width is used for both axes.
	PitchUsesHeight bool
}

// DefaultConfig returns 0.2 rad over 0.5 s with power1.out.
func DefaultConfig() Config {
	return Config{
		Range:    0.2,
		Duration: 500 * time.Millisecond,
		Ease:     tween.Power1Out,
	}
}

// Parallax retargets scene rotation tweens from pointer positions.
type Parallax struct {
	cfg Config
	rot *scene.Rotation
	tl  *tween.Timeline
}

// New creates a parallax driving rot through tl. The caller steps tl.
func New(cfg Config, rot *scene.Rotation, tl *tween.Timeline) *Parallax {
	if cfg.Ease == nil {
		cfg.Ease = tween.Power1Out
	}
	return &Parallax{cfg: cfg, rot: rot, tl: tl}
}

// MapRange maps v linearly from [inMin, inMax] to [outMin, outMax]. Values
// outside the input range extrapolate. An empty input range yields outMin.
func MapRange(inMin, inMax, outMin, outMax, v float32) float32 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Target returns the rotation a pointer at x, y aims for in a w by h
// viewport: yaw about Y from x, pitch about X from y.
func (p *Parallax) Target(x, y float32, w, h int) (yaw, pitch float32) {
	r := p.cfg.Range
	yaw = MapRange(0, float32(w), r, -r, x)

	span := float32(w)
	if p.cfg.PitchUsesHeight {
		span = float32(h)
	}
	pitch = MapRange(0, span, r, -r, y)
	return yaw, pitch
}

// Move starts tweens from the current rotation toward the target for the
// pointer, replacing any in flight. Zero-sized viewports are ignored.
func (p *Parallax) Move(x, y float32, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	yaw, pitch := p.Target(x, y, w, h)
	p.tl.To(&p.rot.Y, yaw, p.cfg.Duration, p.cfg.Ease)
	p.tl.To(&p.rot.X, pitch, p.cfg.Duration, p.cfg.Ease)
}
