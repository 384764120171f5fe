// Package tween animates float32 properties toward targets with easing.
package tween

import (
	"fmt"
	"math"
	"time"
)

// Ease maps normalized progress in [0, 1] to eased progress.
type Ease func(p float64) float64

// Linear is the identity ease.
func Linear(p float64) float64 { return p }

// Power1Out decelerates quadratically.
func Power1Out(p float64) float64 { return 1 - (1-p)*(1-p) }

// Power2Out decelerates cubically.
func Power2Out(p float64) float64 { return 1 - math.Pow(1-p, 3) }

// Power2InOut accelerates then decelerates cubically.
func Power2InOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

var eases = map[string]Ease{
	"linear":       Linear,
	"none":         Linear,
	"power1.out":   Power1Out,
	"power2.out":   Power2Out,
	"power2.inout": Power2InOut,
}

// EaseByName looks up an ease by its config name, e.g. "power1.out".
func EaseByName(name string) (Ease, error) {
	if name == "" {
		return Power1Out, nil
	}
	e, ok := eases[name]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return e, nil
}

// Tween drives one property from its value at creation to a target.
type Tween struct {
	target   *float32
	from     float32
	to       float32
	duration time.Duration
	elapsed  time.Duration
	ease     Ease
}

// New starts a tween from the property's current value.
// A zero duration jumps on the first Step.
func New(target *float32, to float32, duration time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Power1Out
	}
	return &Tween{
		target:   target,
		from:     *target,
		to:       to,
		duration: duration,
		ease:     ease,
	}
}

// Step advances the tween by dt and writes the property.
// Returns true once the target has been reached.
func (t *Tween) Step(dt time.Duration) bool {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		*t.target = t.to
		return true
	}
	p := t.ease(float64(t.elapsed) / float64(t.duration))
	*t.target = t.from + (t.to-t.from)*float32(p)
	return false
}

// To returns the tween's destination value.
func (t *Tween) To() float32 {
	return t.to
}

// Timeline runs tweens on many properties. Starting a tween on a property
// that is already animating replaces the running tween.
type Timeline struct {
	tweens map[*float32]*Tween
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{tweens: make(map[*float32]*Tween)}
}

// To animates target toward value, superseding any tween on target.
func (tl *Timeline) To(target *float32, value float32, duration time.Duration, ease Ease) *Tween {
	tw := New(target, value, duration, ease)
	tl.tweens[target] = tw
	return tw
}

// Step advances every running tween and drops finished ones.
func (tl *Timeline) Step(dt time.Duration) {
	for target, tw := range tl.tweens {
		if tw.Step(dt) {
			delete(tl.tweens, target)
		}
	}
}

// Running reports whether target has a tween in progress.
func (tl *Timeline) Running(target *float32) bool {
	_, ok := tl.tweens[target]
	return ok
}

// Len returns the number of running tweens.
func (tl *Timeline) Len() int {
	return len(tl.tweens)
}
