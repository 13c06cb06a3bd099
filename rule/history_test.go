package rule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chaosgame/rule"
)

func TestHistory_PushAndRead(t *testing.T) {
	h := rule.NewHistory(3)
	require.Equal(t, 3, h.Cap())
	require.Equal(t, 0, h.Len())
	require.Nil(t, h.Read())

	// Partial fill: most-recent-first ordering.
	h.Push(1)
	h.Push(2)
	require.Equal(t, []int{2, 1}, h.Read())

	// Overflow: oldest entries are overwritten.
	h.Push(3)
	h.Push(4)
	h.Push(5)
	require.Equal(t, 3, h.Len())
	require.Equal(t, []int{5, 4, 3}, h.Read())
}

func TestHistory_ZeroCapacity(t *testing.T) {
	for _, capacity := range []int{0, -2} {
		h := rule.NewHistory(capacity)
		require.Equal(t, 0, h.Cap(), "capacity=%d", capacity)

		h.Push(7) // no-op
		require.Equal(t, 0, h.Len(), "capacity=%d", capacity)
		require.Nil(t, h.Read(), "capacity=%d", capacity)
	}
}

func TestHistory_SingleSlot(t *testing.T) {
	h := rule.NewHistory(1)
	h.Push(1)
	h.Push(2)
	h.Push(3)
	require.Equal(t, []int{3}, h.Read())
}

// TestHistory_ReadIsView ensures Read hands out a copy: mutating the result
// must not corrupt the buffer.
func TestHistory_ReadIsView(t *testing.T) {
	h := rule.NewHistory(2)
	h.Push(1)
	h.Push(2)

	view := h.Read()
	view[0] = 99
	require.Equal(t, []int{2, 1}, h.Read())
}
