package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontMeasureText(t *testing.T) {
	f := NewFont()
	gw, gh := f.GlyphSize()
	assert.Equal(t, 6, gw)
	assert.Equal(t, 13, gh)

	w, h := f.MeasureText("skull", 2)
	assert.Equal(t, float32(5*7*2), w)
	assert.Equal(t, float32(13*2), h)

	w, h = f.MeasureText("ab\nlonger", 1)
	assert.Equal(t, float32(6*7), w)
	assert.Equal(t, float32(26), h)

	w, _ = f.MeasureText("", 1)
	assert.Zero(t, w)
}

func TestFontGlyphUV(t *testing.T) {
	f := NewFont()

	u0, v0, u1, v1 := f.GetGlyphUV(' ')
	assert.Equal(t, float32(0), u0)
	assert.Equal(t, float32(0), v0)
	assert.Equal(t, float32(1), u1)
	assert.Greater(t, v1, v0)

	_, a0, _, a1 := f.GetGlyphUV('A')
	assert.Greater(t, a0, v0, "A sits below space in the atlas")
	assert.InDelta(t, v1-v0, a1-a0, 1e-6)
}

func TestFontUnknownRuneFallsBack(t *testing.T) {
	f := NewFont()
	_, q0, _, _ := f.GetGlyphUV('?')
	_, x0, _, _ := f.GetGlyphUV('\U0001F600')
	assert.Equal(t, q0, x0)
}

func TestFontAtlasHasInk(t *testing.T) {
	f := NewFont()
	ink := 0
	for _, p := range f.atlas.Pix {
		if p > 0 {
			ink++
		}
	}
	assert.Positive(t, ink)
	assert.Zero(t, f.TextureID(), "no texture before Upload")
}
