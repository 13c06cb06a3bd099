package chaos

import (
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/chaosgame/polygon"
	"github.com/katalvlaran/chaosgame/rule"
)

// runner encapsulates mutable engine state for one run.
type runner struct {
	n      int
	verts  []geom.Coord
	ratio  float64
	policy rule.Policy
	hist   *rule.History
	opts   Options

	cur  geom.Coord
	prev int // previously selected vertex index, 0 before the first pick
	res  *Result
}

// Run executes the chaos game on a regular n-gon for the given number of
// iterations, applying any number of functional Options.
//
// Per iteration the engine asks the selection rule for the allowed vertex
// set, draws one index uniformly from it with the run-private seeded RNG,
// and contracts the current point toward that vertex:
//
//	x ← (1-r)·x + r·vertex_j
//
// The point starts at the polygon center. Iterations up to the configured
// burn-in advance the trajectory and the selection history but are not
// emitted; every later point is handed to the OnPoint hook and, unless
// retention is disabled, appended to the Result.
//
// Exactly one vertex is selected every step; selection depends on prior
// history, so iterations are strictly sequential and the engine is
// single-threaded by contract. The context is checked once per iteration.
//
// Determinism: a fixed seed and fixed configuration reproduce the sequence
// exactly.
//
// Errors: ErrOptionViolation, ErrInvalidIterations, polygon.ErrInvalidN,
// polygon.ErrInvalidRadius, polygon.ErrInvalidRatio, rule.ErrUnknownRule,
// rule.ErrRuleFuncResult, rule.ErrEmptyAllowedSet, or ctx.Err() on
// cancellation. On any error no partial Result is returned.
//
// Complexity: O(iterations·n) time; O(n + emitted) space with retention,
// O(n) without.
func Run(n, iterations int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if iterations <= 0 || o.BurnIn >= iterations {
		return nil, ErrInvalidIterations
	}

	// Static geometry first: vertex placement validates n and radius.
	verts, err := polygon.Vertices(n, o.Center, o.Radius, o.Rotation)
	if err != nil {
		return nil, err
	}
	ratio, err := polygon.ResolveRatio(n, o.RatioSpec)
	if err != nil {
		return nil, err
	}
	pol, err := o.policy()
	if err != nil {
		return nil, err
	}

	emitted := iterations - o.BurnIn
	r := &runner{
		n:      n,
		verts:  verts,
		ratio:  ratio,
		policy: pol,
		hist:   rule.NewHistory(o.HistoryLen),
		opts:   o,
		cur:    o.Center,
		res: &Result{
			Vertices: verts,
			Ratio:    ratio,
			Rule:     pol.String(),
		},
	}
	if o.RetainPoints {
		r.res.Points = make([]geom.Coord, 0, emitted)
		r.res.VertexPicks = make([]int, 0, emitted)
	}

	if err = r.loop(iterations, rngFromSeed(o.Seed)); err != nil {
		return nil, err
	}

	return r.res, nil
}

// loop advances the simulation for the requested number of iterations.
func (r *runner) loop(iterations int, rng *rand.Rand) error {
	var (
		allowed []int
		j       int
		err     error
	)
	for k := 1; k <= iterations; k++ {
		// cancellation check (once per iteration, before any state change)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		if allowed, err = r.policy.Allowed(r.prev, r.hist.Read(), r.n); err != nil {
			return err
		}
		j = allowed[rng.Intn(len(allowed))]

		r.cur = r.cur.Times(1 - r.ratio).Plus(r.verts[j-1].Times(r.ratio))
		if k > r.opts.BurnIn {
			r.emit(k, j)
		}

		r.prev = j
		r.hist.Push(j)
	}

	return nil
}

// emit reports the freshly computed point downstream: the hook first, then
// the retained sequence.
func (r *runner) emit(k, vertex int) {
	r.opts.OnPoint(k, r.cur, vertex)
	if r.opts.RetainPoints {
		r.res.Points = append(r.res.Points, r.cur)
		r.res.VertexPicks = append(r.res.VertexPicks, vertex)
	}
}
