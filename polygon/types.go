package polygon

import "errors"

// MinVertices is the smallest polygon order the chaos game accepts.
// Triangles and squares collapse to degenerate or trivially dense attractors
// under the kissing-ratio rules, so the library starts at the pentagon.
const MinVertices = 5

// MaxRatio is the exclusive upper bound for a numeric contraction ratio.
const MaxRatio = 1.5

// AutoToken is the ratio specification that selects the closed-form
// kissing ratio for the polygon order; see AutoRatio.
const AutoToken = "auto"

var (
	// ErrInvalidN indicates a polygon order below MinVertices.
	ErrInvalidN = errors.New("polygon: order must be at least 5")
	// ErrInvalidRadius indicates a non-positive or non-finite circumradius.
	ErrInvalidRadius = errors.New("polygon: radius must be positive and finite")
	// ErrInvalidRatio indicates a ratio outside (0, MaxRatio) or a textual
	// specification other than AutoToken.
	ErrInvalidRatio = errors.New("polygon: ratio must be \"auto\" or in (0, 1.5)")
)
