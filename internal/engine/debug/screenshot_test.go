package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCapture(dir string) *ScreenshotCapture {
	sc := NewScreenshotCapture(dir, "exhibits")
	sc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 5, 250e6, time.UTC) }
	return sc
}

func TestFilename(t *testing.T) {
	sc := fixedCapture("shots")
	assert.Equal(t, filepath.Join("shots", "exhibits_horse_2026-03-01_12-30-05.250.png"), sc.Filename("horse"))
	assert.Equal(t, filepath.Join("shots", "exhibits_2026-03-01_12-30-05.250.png"), sc.Filename(""))
}

func TestCaptureFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sc := fixedCapture(dir)

	// 1x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2, "skull")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), b, "top row comes from the last GL row")
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := fixedCapture(t.TempDir())
	_, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2, "")
	assert.ErrorContains(t, err, "size mismatch")
}
