// Package chaosgame is your playground for chaos-game attractors on
// regular polygons — from the bare iteration engine to constrained
// selection rules and reproducible, seedable runs.
//
// 🚀 What is the chaos game?
//
//	Place a regular N-gon, start a point at its center, and repeat:
//	pick a vertex (maybe constrained by what was picked before) and move
//	a fixed fraction of the way toward it. The visited points converge
//	onto a fractal attractor whose shape is governed by three knobs:
//		• the polygon order N (N ≥ 5)
//		• the contraction ratio — closed-form "kissing" value or custom
//		• the selection rule — none, noRepeat, noAdjacent, noNeighbors,
//		  arbitrary offset exclusions, or a custom rule function
//
// ✨ Why choose chaosgame?
//
//   - Deterministic – fixed seed ⇒ identical point sequence, every run
//   - Streaming-first – points flow through a hook; retention is optional
//   - Strict sentinels – every failure is an errors.Is-able value
//   - Pure core – no I/O, no logging, no globals inside the engine
//
// Everything is organized under three subpackages plus a CLI:
//
//	polygon/ — vertex placement and contraction-ratio resolution
//	rule/    — selection policies and the recent-pick history buffer
//	chaos/   — the simulation engine: options, run loop, results
//	cmd/     — the chaosgame command-line collaborator
//
// Rendering, raster/video export and animation timing are deliberately
// outside this module: the engine emits points and vertex decisions; a
// consumer of the OnPoint hook draws or stores them.
//
// Dive into examples/ for commented walkthroughs, and the package docs of
// chaos/ for the full option surface.
//
//	go get github.com/katalvlaran/chaosgame
package chaosgame
