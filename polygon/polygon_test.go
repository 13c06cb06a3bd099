package polygon_test

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chaosgame/polygon"
)

const eps = 1e-12

// TestVertices_Hexagon checks the canonical unit hexagon: six vertices at
// 60° spacing, starting at (1, 0).
func TestVertices_Hexagon(t *testing.T) {
	verts, err := polygon.Vertices(6, geom.Coord{}, 1, 0)
	require.NoError(t, err)
	require.Len(t, verts, 6)

	for i, v := range verts {
		angle := float64(i) * math.Pi / 3
		require.InDelta(t, math.Cos(angle), v.X, eps, "vertex %d X", i+1)
		require.InDelta(t, math.Sin(angle), v.Y, eps, "vertex %d Y", i+1)
	}
}

// TestVertices_CenterAndRotation verifies that rotation and center offsets
// shift every vertex as a rigid body.
func TestVertices_CenterAndRotation(t *testing.T) {
	center := geom.Coord{X: 2, Y: 3}
	verts, err := polygon.Vertices(5, center, 2, math.Pi/2)
	require.NoError(t, err)

	// Vertex 1 at angle π/2: straight up from the center.
	require.InDelta(t, 2.0, verts[0].X, eps)
	require.InDelta(t, 5.0, verts[0].Y, eps)

	// All vertices lie on the circumcircle.
	for i, v := range verts {
		d := v.Minus(center).Magnitude()
		require.InDelta(t, 2.0, d, eps, "vertex %d radius", i+1)
	}
}

func TestVertices_Errors(t *testing.T) {
	center := geom.Coord{}

	_, err := polygon.Vertices(4, center, 1, 0)
	require.ErrorIs(t, err, polygon.ErrInvalidN)

	_, err = polygon.Vertices(5, center, 0, 0)
	require.ErrorIs(t, err, polygon.ErrInvalidRadius)

	_, err = polygon.Vertices(5, center, -1, 0)
	require.ErrorIs(t, err, polygon.ErrInvalidRadius)

	_, err = polygon.Vertices(5, center, math.NaN(), 0)
	require.ErrorIs(t, err, polygon.ErrInvalidRadius)

	_, err = polygon.Vertices(5, center, math.Inf(1), 0)
	require.ErrorIs(t, err, polygon.ErrInvalidRadius)
}
