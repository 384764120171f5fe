package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"focus ignored", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_2}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_2},
			true,
		},
		{
			"key repeat ignored",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_2}},
			Event{},
			false,
		},
		{
			"mouse move",
			&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20},
			Event{Type: EventMouseMove, MouseX: 10, MouseY: 20},
			true,
		},
		{
			"mouse down",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 5, Y: 6, Button: sdl.BUTTON_LEFT},
			Event{Type: EventMouseDown, MouseX: 5, MouseY: 6, Button: sdl.BUTTON_LEFT},
			true,
		},
		{
			"mouse up",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, X: 5, Y: 6, Button: sdl.BUTTON_LEFT},
			Event{Type: EventMouseUp, MouseX: 5, MouseY: 6, Button: sdl.BUTTON_LEFT},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigitIndex(t *testing.T) {
	i, ok := DigitIndex(sdl.SCANCODE_1)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = DigitIndex(sdl.SCANCODE_3)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = DigitIndex(sdl.SCANCODE_0)
	assert.False(t, ok)
	_, ok = DigitIndex(sdl.SCANCODE_A)
	assert.False(t, ok)
}
