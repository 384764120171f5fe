package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
)

type drawCall struct {
	kind string
	text string
	x, y float32
}

type fakePainter struct {
	calls  []drawCall
	frames int
}

func (p *fakePainter) Begin() { p.calls = p.calls[:0] }
func (p *fakePainter) End() { p.frames++ }
func (p *fakePainter) Resize(int, int) {}
func (p *fakePainter) DrawRect(x, y, _, _ float32, _ palette.Color) {
	p.calls = append(p.calls, drawCall{kind: "rect", x: x, y: y})
}
func (p *fakePainter) DrawRectOutline(x, y, _, _, _ float32, _ palette.Color) {
	p.calls = append(p.calls, drawCall{kind: "outline", x: x, y: y})
}
func (p *fakePainter) DrawText(x, y float32, text string, _ float32, _ palette.Color) {
	p.calls = append(p.calls, drawCall{kind: "text", text: text, x: x, y: y})
}
func (p *fakePainter) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)*7) * scale, 13 * scale
}

// frame runs one UI frame with the mouse at x, y and returns which of the
// labels were clicked.
func frame(c *Context, x, y float32, down bool, labels ...string) []string {
	in := c.Input()
	in.MouseX, in.MouseY, in.MouseLeftDown = x, y, down

	c.Begin()
	c.BeginBar("exhibits", 8, 8, 32)
	var clicked []string
	for _, l := range labels {
		if c.Button(l, l, false) {
			clicked = append(clicked, l)
		}
	}
	c.EndBar()
	c.End()
	return clicked
}

func TestButtonClickOnPress(t *testing.T) {
	c := NewContext(&fakePainter{})

	// "skull" is 5*7*2 + 16 = 86 wide, starting at x=8.
	assert.Empty(t, frame(c, 20, 20, false, "skull", "horse"))
	assert.Equal(t, []string{"skull"}, frame(c, 20, 20, true, "skull", "horse"))
	assert.Empty(t, frame(c, 20, 20, true, "skull", "horse"), "held button does not repeat")
	assert.Empty(t, frame(c, 20, 20, false, "skull", "horse"))

	// horse starts at 8 + 86 + 4 = 98.
	assert.Equal(t, []string{"horse"}, frame(c, 100, 20, true, "skull", "horse"))
}

func TestButtonMissOutsideBar(t *testing.T) {
	c := NewContext(&fakePainter{})
	assert.Empty(t, frame(c, 20, 60, true, "skull"))
	assert.False(t, c.Hot())
}

func TestClickEventWithinOneFrame(t *testing.T) {
	c := NewContext(&fakePainter{})
	c.Input().MouseLeftClicked = true

	assert.Equal(t, []string{"bull"}, frame(c, 20, 20, false, "bull"))
	assert.False(t, c.Input().MouseLeftClicked, "click consumed")
	assert.Empty(t, frame(c, 20, 20, false, "bull"))
}

func TestHotTracksHover(t *testing.T) {
	c := NewContext(&fakePainter{})
	frame(c, 20, 20, false, "skull")
	assert.True(t, c.Hot())
	frame(c, 500, 500, false, "skull")
	assert.False(t, c.Hot())
}

func TestButtonOutsideBarIsInert(t *testing.T) {
	p := &fakePainter{}
	c := NewContext(p)
	c.Input().MouseLeftClicked = true
	c.Begin()
	assert.False(t, c.Button("x", "x", false))
	c.Label("ignored")
	c.End()
	assert.Empty(t, p.calls)
}

func TestLabelAdvancesCursor(t *testing.T) {
	p := &fakePainter{}
	c := NewContext(p)
	c.Begin()
	c.BeginBar("status", 0, 0, 26)
	c.Label("ab")
	c.Label("cd")
	c.EndBar()

	var texts []drawCall
	for _, call := range p.calls {
		if call.kind == "text" {
			texts = append(texts, call)
		}
	}
	assert.Len(t, texts, 2)
	assert.Equal(t, float32(0), texts[0].x)
	assert.Equal(t, float32(2*7*2+4), texts[1].x)
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 5, 5}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(14.9, 14.9))
	assert.False(t, r.Contains(15, 12))
	assert.False(t, r.Contains(9, 12))
}
