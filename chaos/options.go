package chaos

import (
	"context"
	"fmt"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/chaosgame/polygon"
	"github.com/katalvlaran/chaosgame/rule"
)

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. negative burn-in), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a single run.
//
// Rule source precedence: when several of RuleFn, Offsets and Preset are
// set, only the highest-priority one is evaluated — custom function first,
// then offsets, then preset. Lower-priority settings are silently ignored;
// the effective source is reported in Result.Rule.
type Options struct {
	// Ctx allows cancellation; checked once per iteration at the loop
	// boundary. A cancelled run returns ctx.Err() and no partial Result.
	Ctx context.Context

	// Seed drives the run-private random source. 0 selects a fixed default
	// seed, so the zero configuration is still deterministic.
	Seed int64

	// RatioSpec is "auto" or a numeric literal; see polygon.ResolveRatio.
	RatioSpec string

	// Center, Radius, Rotation place the polygon; see polygon.Vertices.
	Center   geom.Coord
	Radius   float64
	Rotation float64

	// BurnIn is the number of leading iterations that are computed (they
	// advance the point and the selection history) but never emitted.
	BurnIn int

	// HistoryLen is the capacity of the recent-selection buffer handed to
	// the selection rule. 0 disables history.
	HistoryLen int

	// Preset, Offsets, RuleFn are the three rule sources; see the
	// precedence note above.
	Preset  rule.Preset
	Offsets []int
	RuleFn  rule.Func

	// OnPoint is called for every emitted point with the 1-based iteration
	// number, the point, and the vertex index contracted toward. The point
	// is immutable once handed off; hooks may pipeline it to another
	// goroutine but must not block the loop longer than they can afford.
	OnPoint func(k int, p geom.Coord, vertex int)

	// RetainPoints controls whether the Result keeps the emitted sequence.
	// Stream-only consumers disable it to keep memory flat.
	RetainPoints bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - ratio spec "auto", unit circumradius at the origin, no rotation
//   - no burn-in, no history, preset None (all vertices allowed)
//   - point retention on, no-op OnPoint hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		RatioSpec:    polygon.AutoToken,
		Radius:       1,
		Preset:       rule.None,
		OnPoint:      func(int, geom.Coord, int) {},
		RetainPoints: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the random seed for reproducible runs.
// Seed 0 keeps the deterministic default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRatio sets the contraction-ratio specification: "auto" or a numeric
// literal in (0, 1.5). Resolution errors surface from Run as
// polygon.ErrInvalidRatio.
func WithRatio(spec string) Option {
	return func(o *Options) { o.RatioSpec = spec }
}

// WithCenter places the polygon center.
func WithCenter(c geom.Coord) Option {
	return func(o *Options) { o.Center = c }
}

// WithRadius sets the circumradius. Validation happens in polygon.Vertices;
// a non-positive radius surfaces as polygon.ErrInvalidRadius from Run.
func WithRadius(r float64) Option {
	return func(o *Options) { o.Radius = r }
}

// WithRotation rotates the whole polygon by theta radians.
func WithRotation(theta float64) Option {
	return func(o *Options) { o.Rotation = theta }
}

// WithBurnIn discards the first b computed points from the output while
// still letting them advance the trajectory and the selection history.
//
//	b > 0: discard the first b points
//	b == 0: emit from the first iteration
//	b < 0: invalid option → ErrOptionViolation
func WithBurnIn(b int) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: BurnIn cannot be negative (%d)", ErrOptionViolation, b)
			return
		}
		o.BurnIn = b
	}
}

// WithHistoryLen sets the capacity of the recent-selection buffer passed to
// the rule source. Zero disables history; negative values are invalid.
func WithHistoryLen(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: HistoryLen cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.HistoryLen = h
	}
}

// WithPreset selects a named exclusion rule. Unknown names surface as
// rule.ErrUnknownRule from Run.
func WithPreset(p rule.Preset) Option {
	return func(o *Options) { o.Preset = p }
}

// WithOffsets forbids the given positions relative to the previous pick
// (see rule.FromOffsets). Takes precedence over WithPreset.
func WithOffsets(offsets []int) Option {
	return func(o *Options) {
		if offsets != nil {
			o.Offsets = offsets
		}
	}
}

// WithRuleFunc installs a custom selection rule. Takes precedence over both
// WithOffsets and WithPreset.
func WithRuleFunc(fn rule.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.RuleFn = fn
		}
	}
}

// WithOnPoint registers a hook invoked for every emitted point.
func WithOnPoint(fn func(k int, p geom.Coord, vertex int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPoint = fn
		}
	}
}

// WithoutPoints disables point retention in the Result; use together with
// WithOnPoint for stream-only consumption.
func WithoutPoints() Option {
	return func(o *Options) { o.RetainPoints = false }
}

// policy resolves the configured rule sources by precedence.
func (o *Options) policy() (rule.Policy, error) {
	switch {
	case o.RuleFn != nil:
		return rule.FromFunc(o.RuleFn), nil
	case o.Offsets != nil:
		return rule.FromOffsets(o.Offsets), nil
	default:
		return rule.FromPreset(o.Preset)
	}
}
