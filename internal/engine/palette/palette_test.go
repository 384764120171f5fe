package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"white", White},
		{"#000000", Black},
		{"#110047", RGB(0x11, 0x00, 0x47)},
		{"#47001B", RGB(0x47, 0x00, 0x1b)},
		{"#fff", White},
		{"  Red ", RGB(255, 0, 0)},
		{"gray", RGB(128, 128, 128)},
		{"pink", RGB(255, 192, 203)},
		{"yellow", RGB(255, 255, 0)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want.R, got.R, 1e-6, tt.in)
		assert.InDelta(t, tt.want.G, got.G, 1e-6, tt.in)
		assert.InDelta(t, tt.want.B, got.B, 1e-6, tt.in)
		assert.Equal(t, float32(1), got.A, tt.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#gggggg", "#1234567"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownColor, in)
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.Equal(t, White, Black.Lerp(White, 1))
	assert.Equal(t, Black, Black.Lerp(White, 0))
}

func TestDarkenLighten(t *testing.T) {
	c := Color{0.5, 0.5, 0.5, 1}
	assert.InDelta(t, 0.25, c.Darken(0.5).R, 1e-6)
	assert.InDelta(t, 0.75, c.Lighten(0.5).R, 1e-6)
	assert.Equal(t, float32(1), c.Darken(0.5).A)
	assert.Equal(t, Color{0.5, 0.5, 0.5, 0.25}, c.WithAlpha(0.25))
}
