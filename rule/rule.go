package rule

import (
	"fmt"
	"sort"
	"strings"
)

// Policy decides which vertex indices are eligible for the next pick.
// It is a small immutable value; constructing one is cheap and a Policy may
// be shared across concurrent runs (it carries no per-run state — that lives
// in History).
//
// A Policy draws its allowed set from exactly one source:
//   - a custom Func (FromFunc), validated on every call;
//   - an offset-exclusion set (FromOffsets);
//   - a named preset (FromPreset), which is itself expressed as offsets.
//
// The zero Policy behaves like the None preset: every vertex is allowed.
type Policy struct {
	desc    string
	fn      Func
	offsets []int
}

// FromFunc wraps a caller-supplied selection rule. The Func's output is
// validated on every call per the Func contract; violations surface as
// ErrRuleFuncResult from Allowed.
func FromFunc(fn Func) Policy {
	return Policy{desc: "custom", fn: fn}
}

// FromOffsets builds a Policy that forbids, relative to the previous pick p,
// every index ((p-1+offset) mod n)+1 for offset in offsets. The first pick
// (no previous index) is unconstrained. Offsets may be negative and are
// interpreted modulo n at selection time, so the same Policy serves any
// polygon order.
func FromOffsets(offsets []int) Policy {
	// Copy to keep the Policy immutable even if the caller reuses the slice.
	own := make([]int, len(offsets))
	copy(own, offsets)

	return Policy{desc: fmt.Sprintf("offsets%v", own), offsets: own}
}

// FromPreset resolves a named preset to its Policy. Unknown names yield
// ErrUnknownRule.
func FromPreset(name Preset) (Policy, error) {
	switch name {
	case None:
		return Policy{desc: string(None)}, nil
	case NoRepeat:
		return Policy{desc: string(NoRepeat), offsets: []int{0}}, nil
	case NoAdjacent:
		return Policy{desc: string(NoAdjacent), offsets: []int{-1, 0, 1}}, nil
	case NoNeighbors:
		return Policy{desc: string(NoNeighbors), offsets: []int{-1, 1}}, nil
	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownRule, string(name))
	}
}

// ParsePreset maps a user-facing rule name (case-insensitive) to its Preset.
// Returns ErrUnknownRule for anything outside the published set.
func ParsePreset(s string) (Preset, error) {
	for _, p := range []Preset{None, NoRepeat, NoAdjacent, NoNeighbors} {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// Allowed computes the eligible vertex indices for the next pick.
//
// Arguments follow the Func contract: prev is the previous pick in 1..n or 0
// before the first pick; history is most-recent-first and may be nil.
// The result is ascending, deduplicated and non-empty.
//
// Errors:
//   - ErrRuleFuncResult  — a custom Func returned an empty set or an index
//     outside 1..n.
//   - ErrEmptyAllowedSet — the exclusion offsets eliminated every vertex.
//
// Complexity: O(n) time and space per call.
func (p Policy) Allowed(prev int, history []int, n int) ([]int, error) {
	if p.fn != nil {
		return validateFuncResult(p.fn(prev, history, n), n)
	}

	// First pick: no previous index, nothing to exclude.
	if prev == 0 || len(p.offsets) == 0 {
		return fullRange(n), nil
	}

	forbidden := make(map[int]struct{}, len(p.offsets))
	var idx int
	for _, off := range p.offsets {
		idx = mod(prev-1+off, n) + 1
		forbidden[idx] = struct{}{}
	}

	allowed := make([]int, 0, n-len(forbidden))
	for i := 1; i <= n; i++ {
		if _, banned := forbidden[i]; !banned {
			allowed = append(allowed, i)
		}
	}
	if len(allowed) == 0 {
		return nil, ErrEmptyAllowedSet
	}

	return allowed, nil
}

// String returns the effective rule description used in run summaries.
func (p Policy) String() string {
	if p.desc == "" {
		return string(None)
	}

	return p.desc
}

// validateFuncResult enforces the Func postconditions: non-empty, all indices
// in 1..n. Duplicates are removed and the result is sorted ascending so the
// uniform draw downstream is unbiased regardless of the Func's output order.
func validateFuncResult(raw []int, n int) ([]int, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty set", ErrRuleFuncResult)
	}

	seen := make(map[int]struct{}, len(raw))
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		if v < 1 || v > n {
			return nil, fmt.Errorf("%w: index %d out of 1..%d", ErrRuleFuncResult, v, n)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// fullRange returns [1, 2, …, n].
func fullRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// mod is the non-negative remainder of a by n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
