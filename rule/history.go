package rule

// History is a fixed-capacity circular buffer of recently selected vertex
// indices. It backs stateful selection rules: the engine pushes every pick
// and hands Read() views to Policy.Allowed and custom Funcs.
//
// Layout: a preallocated arena plus a head index and a live count, rather
// than modular arithmetic over a shared flat slice. A zero-capacity History
// is valid and permanently empty.
//
// A History belongs to exactly one running simulation and is not safe for
// concurrent use.
type History struct {
	arena []int
	head  int // arena slot of the most recent entry
	count int // live entries, ≤ cap(arena)
}

// NewHistory returns a History holding at most capacity entries.
// Negative capacities are treated as zero.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}

	return &History{arena: make([]int, capacity)}
}

// Push records v as the most recent selection, overwriting the oldest entry
// once the buffer is full. On a zero-capacity History it is a no-op.
//
// Complexity: O(1).
func (h *History) Push(v int) {
	if len(h.arena) == 0 {
		return
	}

	h.head = (h.head + 1) % len(h.arena)
	h.arena[h.head] = v
	if h.count < len(h.arena) {
		h.count++
	}
}

// Read returns the recorded selections ordered most-recent-first.
// The result has length min(capacity, pushes so far) and is nil when empty.
// The returned slice is freshly allocated; mutating it does not affect the
// buffer.
//
// Complexity: O(H) time and space, H = current length.
func (h *History) Read() []int {
	if h.count == 0 {
		return nil
	}

	out := make([]int, h.count)
	var slot int
	for i := 0; i < h.count; i++ {
		slot = (h.head - i + len(h.arena)) % len(h.arena)
		out[i] = h.arena[slot]
	}

	return out
}

// Len reports the number of live entries.
func (h *History) Len() int { return h.count }

// Cap reports the fixed capacity.
func (h *History) Cap() int { return len(h.arena) }
