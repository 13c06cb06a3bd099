// SPDX-License-Identifier: MIT
// Package: chaosgame/rule
//
// types.go — sentinel errors, preset names and the custom-rule signature.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Call sites attach context with %w wrapping where useful.
//   • All rule failures are fatal for the run; none are retriable.

package rule

import "errors"

// Func is the signature of a caller-supplied selection rule.
//
// Contract:
//   - prev is the previously selected vertex index in 1..n, or 0 when no
//     selection has been made yet (first pick).
//   - history lists past selections most-recent-first; its length is bounded
//     by the engine's configured history capacity. It may be nil.
//   - The return value must be a non-empty set of indices in 1..n.
//     Duplicates are tolerated and removed; anything else is rejected with
//     ErrRuleFuncResult at the call site.
//
// A Func must be deterministic and free of side effects on its arguments:
// the engine may pass the same history slice to consecutive calls.
type Func func(prev int, history []int, n int) []int

// Preset names a built-in exclusion rule.
type Preset string

const (
	// None allows every vertex on every pick.
	None Preset = "none"
	// NoRepeat forbids picking the same vertex twice in a row.
	NoRepeat Preset = "noRepeat"
	// NoAdjacent forbids the previous vertex and both of its neighbors
	// (offset set {-1, 0, 1}).
	NoAdjacent Preset = "noAdjacent"
	// NoNeighbors forbids only the two neighbors of the previous vertex;
	// immediate repeats stay allowed (offset set {-1, 1}).
	NoNeighbors Preset = "noNeighbors"
)

var (
	// ErrUnknownRule indicates a preset name outside the published set.
	// Usage: if errors.Is(err, rule.ErrUnknownRule) { /* report bad name */ }.
	ErrUnknownRule = errors.New("rule: unknown preset")

	// ErrRuleFuncResult indicates a custom Func returned an empty set or an
	// index outside 1..n. The offending value is attached via %w at the
	// validation site.
	ErrRuleFuncResult = errors.New("rule: invalid custom rule result")

	// ErrEmptyAllowedSet indicates an exclusion rule eliminated every vertex.
	// This is a configuration fault (e.g. offsets covering the whole polygon)
	// and aborts the run; it is never retried.
	ErrEmptyAllowedSet = errors.New("rule: allowed set is empty")
)
