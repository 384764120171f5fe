package particles

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
)

func TestMaterialTimeStartsAtZero(t *testing.T) {
	m := NewMaterial(palette.Black, palette.White, 2)
	assert.Equal(t, float32(0), m.Time())
}

func TestMaterialTimeNeverDecreases(t *testing.T) {
	m := NewMaterial(palette.Black, palette.White, 2)

	assert.True(t, m.SetTime(1.5))
	assert.False(t, m.SetTime(1.0))
	assert.Equal(t, float32(1.5), m.Time())
	assert.False(t, m.SetTime(1.5))
	assert.True(t, m.SetTime(2))
	assert.Equal(t, float32(2), m.Time())
}

func unitQuad() ([][3]float32, []uint32) {
	return [][3]float32{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}, []uint32{0, 1, 2, 0, 2, 3}
}

func TestSampleStaysOnSurface(t *testing.T) {
	pos, idx := unitQuad()
	rng := rand.New(rand.NewPCG(1, 2))

	points, randoms, err := Sample(pos, idx, 500, rng)
	require.NoError(t, err)
	require.Len(t, points, 1500)
	require.Len(t, randoms, 500)

	for i := 0; i < len(points); i += 3 {
		x, y, z := points[i], points[i+1], points[i+2]
		assert.True(t, x >= -1e-6 && x <= 1+1e-6, "x=%f", x)
		assert.True(t, y >= -1e-6 && y <= 1+1e-6, "y=%f", y)
		assert.InDelta(t, 0, z, 1e-6)
	}
	for _, r := range randoms {
		assert.True(t, r >= 0 && r < 1)
	}
}

func TestSampleWeightsByArea(t *testing.T) {
	// One big triangle (area 50) and one tiny one (area 0.005), far apart.
	pos := [][3]float32{
		{0, 0, 0}, {10, 0, 0}, {0, 10, 0},
		{100, 0, 0}, {100.1, 0, 0}, {100, 0.1, 0},
	}
	rng := rand.New(rand.NewPCG(7, 7))

	points, _, err := Sample(pos, nil, 2000, rng)
	require.NoError(t, err)

	small := 0
	for i := 0; i < len(points); i += 3 {
		if points[i] >= 100 {
			small++
		}
	}
	assert.Less(t, small, 10)
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	pos, idx := unitQuad()
	a, _, err := Sample(pos, idx, 50, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	b, _, err := Sample(pos, idx, 50, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleVerticesWithoutTriangles(t *testing.T) {
	pos := [][3]float32{{1, 2, 3}, {4, 5, 6}}
	points, _, err := Sample(pos, nil, 10, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	for i := 0; i < len(points); i += 3 {
		p := [3]float32{points[i], points[i+1], points[i+2]}
		assert.Contains(t, pos, p)
	}
}

func TestSampleEmpty(t *testing.T) {
	_, _, err := Sample(nil, nil, 10, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestPointsNode(t *testing.T) {
	p := NewPoints("skull", []float32{0, 0, 0, 1, 1, 1}, []float32{0.1, 0.2}, nil)
	assert.Equal(t, "skull", p.NodeName())
	assert.Equal(t, 2, p.Count())
}
