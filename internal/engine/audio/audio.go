// Package audio loops an ambience track for the selected exhibit.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by playback calls before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Player plays one looping track at a time.
type Player struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	gain     *effects.Volume
	path     string
}

// New creates a player at the given volume.
func New(volume float64) *Player {
	return &Player{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.stopLocked()
	speaker.Close()
	p.initialized = false
}

// Play loops the WAV file at path, replacing the current track. Playing the
// track already running is a no-op. An empty path stops playback.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	if path == p.path {
		return nil
	}
	p.stopLocked()
	if path == "" {
		return nil
	}

	streamer, format, err := open(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = &loopStreamer{source: streamer}
	if format.SampleRate != p.sampleRate {
		s = beep.Resample(4, format.SampleRate, p.sampleRate, s)
	}

	p.ctrl = &beep.Ctrl{Streamer: s}
	p.gain = &effects.Volume{Streamer: p.ctrl, Base: 10}
	p.applyVolume()

	p.streamer = streamer
	p.path = path
	speaker.Play(p.gain)
	return nil
}

// TogglePause pauses or resumes the current track and reports whether it is
// now paused. Without a track it does nothing and returns false.
func (p *Player) TogglePause() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	paused := p.ctrl.Paused
	speaker.Unlock()
	return paused
}

// Current returns the path of the track playing, or "".
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// SetVolume sets the volume, clamped to 0.0..1.0.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(v, 0, 1)
	if p.gain != nil {
		speaker.Lock()
		p.applyVolume()
		speaker.Unlock()
	}
}

// Volume returns the volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *Player) applyVolume() {
	p.gain.Silent = p.volume <= 0
	p.gain.Volume = volumeToDb(p.volume) / 20
}

func (p *Player) stopLocked() {
	if p.streamer == nil {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.streamer = nil
	p.ctrl = nil
	p.gain = nil
	p.path = ""
}

// open decodes a WAV file.
func open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open ambience: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode wav %s: %w", path, err)
	}
	return streamer, format, nil
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0 dB, 0.5 about -6 dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// loopStreamer rewinds its source when it runs out.
type loopStreamer struct {
	source beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.source.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			if l.source.Len() == 0 {
				return filled, filled > 0
			}
			if err := l.source.Seek(0); err != nil {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
