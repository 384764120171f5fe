package ui2d

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

// Font is a fixed-width bitmap font backed by a single-channel texture atlas.
// The atlas is the glyph column of basicfont.Face7x13.
type Font struct {
	face  *basicfont.Face
	atlas *image.Alpha
	tex   uint32
}

// NewFont builds the CPU side atlas. Call Upload once a GL context exists.
func NewFont() *Font {
	face := basicfont.Face7x13
	b := face.Mask.Bounds()
	atlas := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(atlas, atlas.Bounds(), face.Mask, b.Min, draw.Src)

	return &Font{face: face, atlas: atlas}
}

// Upload creates the GL texture for the atlas.
func (f *Font) Upload() {
	if f.tex != 0 {
		return
	}
	b := f.atlas.Bounds()

	gl.GenTextures(1, &f.tex)
	gl.BindTexture(gl.TEXTURE_2D, f.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(f.atlas.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases the texture.
func (f *Font) Close() {
	if f.tex != 0 {
		gl.DeleteTextures(1, &f.tex)
		f.tex = 0
	}
}

// TextureID returns the atlas texture, or 0 before Upload.
func (f *Font) TextureID() uint32 {
	return f.tex
}

// GlyphSize returns the glyph cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.face.Width, f.face.Height
}

// Advance returns the horizontal distance between glyph origins.
func (f *Font) Advance() int {
	return f.face.Advance
}

// glyphIndex returns the atlas row of r, falling back to '?'.
func (f *Font) glyphIndex(r rune) int {
	for _, rr := range f.face.Ranges {
		if r >= rr.Low && r < rr.High {
			return int(r-rr.Low) + rr.Offset
		}
	}
	if r != '?' {
		return f.glyphIndex('?')
	}
	return 0
}

// GetGlyphUV returns the atlas texture coordinates of r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	b := f.atlas.Bounds()
	h := float32(b.Dy())
	y := float32(f.glyphIndex(r) * f.face.Height)
	return 0, y / h, 1, (y + float32(f.face.Height)) / h
}

// MeasureText returns the size of text drawn at scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	var longest, cur, lines int
	lines = 1
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > longest {
			longest = cur
		}
	}
	return float32(longest*f.face.Advance) * scale, float32(lines*f.face.Height) * scale
}
