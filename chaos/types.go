package chaos

import (
	"errors"

	"github.com/jbeda/geom"
)

// Sentinel errors for engine configuration.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chaos: invalid option supplied")

	// ErrInvalidIterations is returned when the iteration count is not
	// positive or the burn-in does not leave at least one emitted point.
	ErrInvalidIterations = errors.New("chaos: iteration count must exceed burn-in")
)

// Result summarizes a completed run.
//
// Points and VertexPicks are parallel: VertexPicks[i] is the 1-based vertex
// index the engine contracted toward to produce Points[i]. Both cover only
// the emitted tail of the run, i.e. iterations after the burn-in; when
// retention is disabled (WithoutPoints) both are nil and only the summary
// fields are populated.
type Result struct {
	// Vertices are the polygon vertex coordinates, 1-based index i at
	// Vertices[i-1]. Immutable after the run.
	Vertices []geom.Coord

	// Ratio is the resolved contraction ratio actually applied.
	Ratio float64

	// Rule describes the effective selection rule, after precedence
	// resolution (custom function > offsets > preset).
	Rule string

	// Points are the emitted points in iteration order.
	Points []geom.Coord

	// VertexPicks are the selected vertex indices, parallel to Points.
	VertexPicks []int
}
