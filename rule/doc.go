// Package rule implements vertex-selection policies for the chaos game:
// which polygon vertices are eligible for the next pick, given what was
// picked before.
//
// Three interchangeable rule sources produce a Policy:
//
//   - FromPreset — the named rules none, noRepeat, noAdjacent, noNeighbors;
//   - FromOffsets — forbid an arbitrary set of positions relative to the
//     previous pick (noAdjacent is exactly offsets {-1, 0, 1});
//   - FromFunc — a caller-supplied Func, validated on every call.
//
// A Policy only narrows the choice; the actual uniform draw from the allowed
// set belongs to the simulation engine. Stateful rules read past picks from
// a History ring buffer, most-recent-first.
//
// Vertex indices are 1-based (1..N); index 0 encodes "no pick yet".
//
// All failures are fatal sentinels: ErrUnknownRule, ErrRuleFuncResult and
// ErrEmptyAllowedSet. An empty allowed set is a configuration fault, not a
// recoverable condition.
package rule
