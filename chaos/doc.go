// Package chaos is the simulation engine of the chaos game: an iterative
// stochastic process where a moving point is repeatedly contracted toward a
// randomly chosen vertex of a regular polygon.
//
// 🚀 What is the chaos game?
//
//	Start at the polygon center. Each step, pick a vertex (uniformly from
//	the set the active selection rule allows) and move a fixed fraction of
//	the way toward it. The visited points trace a fractal attractor —
//	a Sierpiński-like figure whose shape depends on the polygon order,
//	the contraction ratio and the exclusion rule.
//
// ✨ Key features:
//   - closed-form "kissing" ratio per polygon order (ratio spec "auto")
//   - interchangeable selection rules: presets, offset exclusion, custom Func
//   - bounded selection history feeding stateful rules
//   - burn-in: leading iterations shape the trajectory but are not emitted
//   - deterministic runs under a fixed seed; run-private RNG
//   - streaming via an OnPoint hook, optional in-memory retention
//   - context cancellation checked at every loop boundary
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chaosgame/chaos"
//
//	res, err := chaos.Run(5, 100_000,
//	  chaos.WithSeed(42),
//	  chaos.WithPreset(rule.NoRepeat),
//	  chaos.WithBurnIn(20),
//	)
//	// res.Points holds the attractor; res.Ratio, res.Rule describe the run.
//
// The engine is strictly sequential — every selection depends on the
// previous one — so the only concurrency seam is handing emitted points to
// an independent consumer through OnPoint; each point is immutable once
// emitted.
//
// See examples in example_test.go and the walkthroughs under examples/.
package chaos
