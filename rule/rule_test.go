package rule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chaosgame/rule"
)

// fullRange is a test helper mirroring the unconstrained allowed set.
func fullRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

func TestFromPreset_Known(t *testing.T) {
	for _, p := range []rule.Preset{rule.None, rule.NoRepeat, rule.NoAdjacent, rule.NoNeighbors} {
		pol, err := rule.FromPreset(p)
		require.NoError(t, err, "preset %q", p)
		require.Equal(t, string(p), pol.String(), "preset %q", p)
	}
}

func TestFromPreset_Unknown(t *testing.T) {
	_, err := rule.FromPreset("noClue")
	require.ErrorIs(t, err, rule.ErrUnknownRule)
}

func TestParsePreset(t *testing.T) {
	p, err := rule.ParsePreset("NOREPEAT")
	require.NoError(t, err)
	require.Equal(t, rule.NoRepeat, p)

	p, err = rule.ParsePreset("noneighbors")
	require.NoError(t, err)
	require.Equal(t, rule.NoNeighbors, p)

	_, err = rule.ParsePreset("noSuchRule")
	require.ErrorIs(t, err, rule.ErrUnknownRule)
}

// TestAllowed_FirstPick: with no previous index every rule source allows the
// full vertex range.
func TestAllowed_FirstPick(t *testing.T) {
	noAdjacent, err := rule.FromPreset(rule.NoAdjacent)
	require.NoError(t, err)

	policies := []rule.Policy{
		{}, // zero value behaves like None
		noAdjacent,
		rule.FromOffsets([]int{0, 1, 2, 3, 4}),
	}
	for i, pol := range policies {
		allowed, aErr := pol.Allowed(0, nil, 7)
		require.NoError(t, aErr, "policy #%d", i)
		require.Equal(t, fullRange(7), allowed, "policy #%d", i)
	}
}

// TestNoRepeat_Property simulates 10,000 selection steps and asserts that
// consecutive picks never coincide.
func TestNoRepeat_Property(t *testing.T) {
	pol, err := rule.FromPreset(rule.NoRepeat)
	require.NoError(t, err)

	const n = 6
	rng := rand.New(rand.NewSource(1))
	prev := 0
	for step := 0; step < 10_000; step++ {
		allowed, aErr := pol.Allowed(prev, nil, n)
		require.NoError(t, aErr)

		pick := allowed[rng.Intn(len(allowed))]
		require.NotEqual(t, prev, pick, "step %d", step)
		prev = pick
	}
}

// TestNoAdjacent_N7: the allowed set never contains the previous pick or
// either of its ring neighbors.
func TestNoAdjacent_N7(t *testing.T) {
	pol, err := rule.FromPreset(rule.NoAdjacent)
	require.NoError(t, err)

	const n = 7
	for prev := 1; prev <= n; prev++ {
		allowed, aErr := pol.Allowed(prev, nil, n)
		require.NoError(t, aErr, "prev=%d", prev)
		require.Len(t, allowed, n-3, "prev=%d", prev)

		left := (prev-2+n)%n + 1
		right := prev%n + 1
		require.NotContains(t, allowed, prev, "prev=%d", prev)
		require.NotContains(t, allowed, left, "prev=%d", prev)
		require.NotContains(t, allowed, right, "prev=%d", prev)
	}
}

// TestOffsets_MatchNoAdjacent: offsets {0, 1, -1} must be behaviorally
// identical to the noAdjacent preset for every previous pick.
func TestOffsets_MatchNoAdjacent(t *testing.T) {
	preset, err := rule.FromPreset(rule.NoAdjacent)
	require.NoError(t, err)
	offsets := rule.FromOffsets([]int{0, 1, -1})

	for _, n := range []int{5, 7, 12} {
		for prev := 0; prev <= n; prev++ {
			want, wErr := preset.Allowed(prev, nil, n)
			got, gErr := offsets.Allowed(prev, nil, n)
			require.NoError(t, wErr, "n=%d prev=%d", n, prev)
			require.NoError(t, gErr, "n=%d prev=%d", n, prev)
			require.Equal(t, want, got, "n=%d prev=%d", n, prev)
		}
	}
}

// TestNoNeighbors_AllowsRepeat: the previous pick itself stays allowed.
func TestNoNeighbors_AllowsRepeat(t *testing.T) {
	pol, err := rule.FromPreset(rule.NoNeighbors)
	require.NoError(t, err)

	allowed, err := pol.Allowed(3, nil, 7)
	require.NoError(t, err)
	require.Contains(t, allowed, 3)
	require.NotContains(t, allowed, 2)
	require.NotContains(t, allowed, 4)
}

// TestFromFunc_MatchNoRepeat: a custom function excluding only the previous
// pick must match the noRepeat preset exactly.
func TestFromFunc_MatchNoRepeat(t *testing.T) {
	custom := rule.FromFunc(func(prev int, _ []int, n int) []int {
		out := make([]int, 0, n)
		for i := 1; i <= n; i++ {
			if i != prev {
				out = append(out, i)
			}
		}
		return out
	})
	preset, err := rule.FromPreset(rule.NoRepeat)
	require.NoError(t, err)

	const n = 9
	for prev := 0; prev <= n; prev++ {
		want, wErr := preset.Allowed(prev, nil, n)
		got, gErr := custom.Allowed(prev, nil, n)
		require.NoError(t, wErr, "prev=%d", prev)
		require.NoError(t, gErr, "prev=%d", prev)
		require.Equal(t, want, got, "prev=%d", prev)
	}
}

func TestFromFunc_Validation(t *testing.T) {
	n := 5

	// Empty result.
	empty := rule.FromFunc(func(int, []int, int) []int { return nil })
	_, err := empty.Allowed(1, nil, n)
	require.ErrorIs(t, err, rule.ErrRuleFuncResult)

	// Out-of-range indices, both sides.
	tooHigh := rule.FromFunc(func(int, []int, int) []int { return []int{1, 6} })
	_, err = tooHigh.Allowed(1, nil, n)
	require.ErrorIs(t, err, rule.ErrRuleFuncResult)

	tooLow := rule.FromFunc(func(int, []int, int) []int { return []int{0, 2} })
	_, err = tooLow.Allowed(1, nil, n)
	require.ErrorIs(t, err, rule.ErrRuleFuncResult)

	// Duplicates are tolerated and the result comes back sorted.
	messy := rule.FromFunc(func(int, []int, int) []int { return []int{4, 2, 4, 2, 1} })
	allowed, err := messy.Allowed(1, nil, n)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, allowed)
}

// TestEmptyAllowedSet: an offset set covering every position of a pentagon
// leaves nothing to pick once a previous index exists.
func TestEmptyAllowedSet(t *testing.T) {
	pol := rule.FromOffsets([]int{0, 1, 2, 3, 4})

	// First pick is unconstrained...
	allowed, err := pol.Allowed(0, nil, 5)
	require.NoError(t, err)
	require.Len(t, allowed, 5)

	// ...every later pick is impossible.
	_, err = pol.Allowed(2, nil, 5)
	require.ErrorIs(t, err, rule.ErrEmptyAllowedSet)
}

func TestPolicy_String(t *testing.T) {
	require.Equal(t, "none", rule.Policy{}.String())
	require.Equal(t, "custom", rule.FromFunc(func(int, []int, int) []int { return []int{1} }).String())
	require.Equal(t, "offsets[0 1 -1]", rule.FromOffsets([]int{0, 1, -1}).String())
}

// TestFromOffsets_Immutable: mutating the caller's offset slice after
// construction must not change the Policy.
func TestFromOffsets_Immutable(t *testing.T) {
	offs := []int{0}
	pol := rule.FromOffsets(offs)
	offs[0] = 2

	allowed, err := pol.Allowed(1, nil, 5)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5}, allowed) // still excludes offset 0 (= prev)
}
