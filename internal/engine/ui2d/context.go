package ui2d

import (
	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
)

const (
	textScale  = float32(2)
	padding    = float32(8)
	spacing    = float32(4)
	defaultRow = float32(32)
)

// Context is the immediate mode UI: widgets are declared every frame and
// report interaction through their return values.
type Context struct {
	painter Painter
	input   *InputState

	hotWidget    string
	activeWidget string

	// Layout state for the current bar
	bar     *barState
	cursorX float32
	cursorY float32
}

type barState struct {
	id   string
	x, y float32
	h    float32
}

// NewContext creates a UI context drawing with p.
func NewContext(p Painter) *Context {
	return &Context{
		painter: p,
		input:   &InputState{},
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.painter.Resize(width, height)
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.hotWidget = ""
	c.painter.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.painter.End()
	c.input.EndFrame()
}

// Hot reports whether the pointer is over a widget this frame.
func (c *Context) Hot() bool {
	return c.hotWidget != ""
}

// BeginBar starts a horizontal row of widgets at x, y.
func (c *Context) BeginBar(id string, x, y, height float32) {
	if height == 0 {
		height = defaultRow
	}
	c.bar = &barState{id: id, x: x, y: y, h: height}
	c.cursorX = x
	c.cursorY = y
}

// EndBar ends the current bar.
func (c *Context) EndBar() {
	c.bar = nil
}

// Button draws a button sized to its label and returns true if clicked.
// Selected buttons are drawn highlighted.
func (c *Context) Button(id, label string, selected bool) bool {
	if c.bar == nil {
		return false
	}

	textW, textH := c.painter.MeasureText(label, textScale)
	x, y := c.cursorX, c.cursorY
	w, h := textW+padding*2, c.bar.h

	fullID := c.bar.id + "_" + id
	hovered := c.input.IsMouseInRect(x, y, w, h)
	clicked := false

	if hovered {
		c.hotWidget = fullID
		// Click on press; the event flag covers press+release within one frame
		if c.input.MouseLeftPressed || c.input.MouseLeftClicked {
			c.activeWidget = fullID
			clicked = true
			c.input.MouseLeftClicked = false
			c.input.MouseLeftPressed = false
		}
	}

	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	switch {
	case c.activeWidget == fullID:
		color = ColorButtonActive
	case hovered:
		color = ColorButtonHover
	}
	border := ColorPanelBorder
	if selected {
		border = ColorHighlight
	}

	c.painter.DrawRect(x, y, w, h, color)
	c.painter.DrawRectOutline(x, y, w, h, 1, border)
	c.painter.DrawText(x+padding, y+(h-textH)/2, label, textScale, ColorText)

	c.cursorX += w + spacing
	return clicked
}

// Label draws text in the current bar.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorTextDim)
}

// LabelColored draws text in the current bar with a specific color.
func (c *Context) LabelColored(text string, color palette.Color) {
	if c.bar == nil {
		return
	}
	w, h := c.painter.MeasureText(text, textScale)
	c.painter.DrawText(c.cursorX, c.cursorY+(c.bar.h-h)/2, text, textScale, color)
	c.cursorX += w + spacing
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
