package polygon

import (
	"math"
	"strconv"
	"strings"
)

// AutoRatio computes the kissing (optimal packing) contraction ratio for a
// regular n-gon: the largest ratio at which the n sub-attractors around each
// vertex just touch without overlapping. The closed form depends on n mod 4:
//
//	n ≡ 0 (mod 4): r = 1 / (1 + tan(π/n))
//	n ≡ 2 (mod 4): r = 1 / (1 + sin(π/n))
//	n odd:         r = 1 / (1 + 2·sin(π/(2n)))
//
// For all valid n the result lies strictly inside (0, 1).
//
// Errors: ErrInvalidN when n < MinVertices.
//
// Complexity: O(1).
func AutoRatio(n int) (float64, error) {
	if n < MinVertices {
		return 0, ErrInvalidN
	}

	fn := float64(n)
	switch n % 4 {
	case 0:
		return 1 / (1 + math.Tan(math.Pi/fn)), nil
	case 2:
		return 1 / (1 + math.Sin(math.Pi/fn)), nil
	default: // n odd
		return 1 / (1 + 2*math.Sin(math.Pi/(2*fn))), nil
	}
}

// ValidateRatio reports whether r is an acceptable contraction ratio:
// strictly positive, finite, and below MaxRatio. Returns ErrInvalidRatio
// otherwise.
func ValidateRatio(r float64) error {
	if math.IsNaN(r) || r <= 0 || r >= MaxRatio {
		return ErrInvalidRatio
	}

	return nil
}

// ResolveRatio turns a user-facing ratio specification into a scalar.
// The specification is either AutoToken ("auto", case-insensitive) or a
// numeric literal; any other text is rejected. Numeric values pass through
// ValidateRatio.
//
// Errors: ErrInvalidN (via AutoRatio), ErrInvalidRatio.
//
// Pure function of (n, spec); no state is consulted or mutated.
func ResolveRatio(n int, spec string) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(spec), AutoToken) {
		return AutoRatio(n)
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(spec), 64)
	if err != nil {
		return 0, ErrInvalidRatio
	}
	if err = ValidateRatio(r); err != nil {
		return 0, err
	}

	return r, nil
}
