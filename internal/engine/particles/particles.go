// Package particles holds the point cloud representation of exhibits and the
// material state its shader reads.
package particles

import (
	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
)

// Material is the CPU side of the particle shader: two tint colors, a point
// size and the uTime uniform.
type Material struct {
	Color1    palette.Color
	Color2    palette.Color
	PointSize float32

	time float32
}

// NewMaterial creates a material with its time uniform at zero.
func NewMaterial(color1, color2 palette.Color, pointSize float32) *Material {
	return &Material{
		Color1:    color1,
		Color2:    color2,
		PointSize: pointSize,
	}
}

// Time returns the current uTime value in seconds.
func (m *Material) Time() float32 {
	return m.time
}

// SetTime writes uTime. Values older than the current one are ignored so the
// uniform never runs backwards. Returns true if the value changed.
func (m *Material) SetTime(t float32) bool {
	if t <= m.time {
		return false
	}
	m.time = t
	return true
}

// Points is a point cloud scene node.
type Points struct {
	name string

	// Positions holds xyz triples; Randoms one value in [0, 1) per point,
	// used by the shader to desynchronise particle motion.
	Positions []float32
	Randoms   []float32

	Material *Material
}

// NewPoints wraps sampled positions into a node.
func NewPoints(name string, positions, randoms []float32, mat *Material) *Points {
	return &Points{
		name:      name,
		Positions: positions,
		Randoms:   randoms,
		Material:  mat,
	}
}

// NodeName implements scene.Node.
func (p *Points) NodeName() string {
	return p.name
}

// Count returns the number of points.
func (p *Points) Count() int {
	return len(p.Positions) / 3
}
