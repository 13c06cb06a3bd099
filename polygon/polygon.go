package polygon

import (
	"math"

	"github.com/jbeda/geom"
)

// Vertices places the n vertices of a regular polygon on the circle of the
// given radius around center, starting at rotation radians and proceeding
// counter-clockwise. Vertex i (1-indexed) sits at angle
//
//	(i-1)·2π/n + rotation.
//
// The returned slice is freshly allocated and never mutated by this package;
// callers treat it as immutable for the lifetime of a run.
//
// Errors:
//   - ErrInvalidN      — n < MinVertices.
//   - ErrInvalidRadius — radius ≤ 0, NaN or ±Inf.
//
// Complexity: O(n) time, O(n) space.
func Vertices(n int, center geom.Coord, radius, rotation float64) ([]geom.Coord, error) {
	if n < MinVertices {
		return nil, ErrInvalidN
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, ErrInvalidRadius
	}

	var (
		step  = 2 * math.Pi / float64(n)
		verts = make([]geom.Coord, n)
		angle float64
	)
	for i := 0; i < n; i++ {
		angle = float64(i)*step + rotation
		verts[i] = geom.Coord{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}

	return verts, nil
}
