package particles

import (
	"errors"
	"math/rand/v2"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyGeometry is returned when there is nothing to sample from.
var ErrEmptyGeometry = errors.New("geometry has no vertices")

// Sample scatters count points over the surface of a triangle mesh,
// weighting triangles by area. Without indices, positions are read as a
// triangle list; if that yields no triangles the vertices are sampled
// directly. Returns xyz positions and one random value per point.
func Sample(positions [][3]float32, indices []uint32, count int, rng *rand.Rand) ([]float32, []float32, error) {
	if len(positions) == 0 {
		return nil, nil, ErrEmptyGeometry
	}
	if count <= 0 {
		return nil, nil, nil
	}

	tris := triangles(positions, indices)

	out := make([]float32, 0, count*3)
	randoms := make([]float32, 0, count)

	if len(tris) == 0 {
		for i := 0; i < count; i++ {
			p := positions[rng.IntN(len(positions))]
			out = append(out, p[0], p[1], p[2])
			randoms = append(randoms, rng.Float32())
		}
		return out, randoms, nil
	}

	// Cumulative area table for weighted triangle picks
	cumulative := make([]float32, len(tris))
	var total float32
	for i, tri := range tris {
		total += tri.area()
		cumulative[i] = total
	}

	for i := 0; i < count; i++ {
		var tri triangle
		if total > 0 {
			r := rng.Float32() * total
			idx := sort.Search(len(cumulative), func(j int) bool { return cumulative[j] > r })
			if idx == len(cumulative) {
				idx--
			}
			tri = tris[idx]
		} else {
			tri = tris[rng.IntN(len(tris))]
		}

		p := tri.point(rng.Float32(), rng.Float32())
		out = append(out, p[0], p[1], p[2])
		randoms = append(randoms, rng.Float32())
	}

	return out, randoms, nil
}

type triangle struct {
	a, b, c mgl32.Vec3
}

func (t triangle) area() float32 {
	return t.b.Sub(t.a).Cross(t.c.Sub(t.a)).Len() / 2
}

// point maps two uniform values to a uniform point on the triangle.
func (t triangle) point(u, v float32) mgl32.Vec3 {
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	return t.a.Add(t.b.Sub(t.a).Mul(u)).Add(t.c.Sub(t.a).Mul(v))
}

func triangles(positions [][3]float32, indices []uint32) []triangle {
	var tris []triangle
	if len(indices) > 0 {
		for i := 0; i+2 < len(indices); i += 3 {
			ia, ib, ic := indices[i], indices[i+1], indices[i+2]
			if int(ia) >= len(positions) || int(ib) >= len(positions) || int(ic) >= len(positions) {
				continue
			}
			tris = append(tris, triangle{
				a: positions[ia],
				b: positions[ib],
				c: positions[ic],
			})
		}
		return tris
	}
	for i := 0; i+2 < len(positions); i += 3 {
		tris = append(tris, triangle{
			a: positions[i],
			b: positions[i+1],
			c: positions[i+2],
		})
	}
	return tris
}
