// Package polygon computes the static geometry of a chaos-game run:
// the vertex coordinates of a regular N-gon and the contraction ratio
// applied on every iteration.
//
// Both concerns are pure functions of their inputs, evaluated once per run:
//
//   - Vertices places N ≥ 5 points on a circle {center, radius, rotation};
//     the result is immutable for the lifetime of the run.
//   - AutoRatio / ResolveRatio produce the scalar contraction ratio, either
//     from the closed-form kissing rule (ratio spec "auto") or from a
//     numeric value validated against (0, 1.5).
//
// The kissing ratio is the largest contraction at which the N copies of the
// attractor around each vertex just touch; its closed form branches on
// N mod 4 (see AutoRatio).
//
// Points are expressed as geom.Coord from github.com/jbeda/geom.
package polygon
