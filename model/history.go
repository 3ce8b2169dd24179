package model

// History keeps the hashes of the most recent boards so that still lifes and
// short oscillators can be recognised.
type History struct {
	depth  int
	hashes []string
}

// NewHistory remembers up to depth states; depth below 1 is treated as 1
func NewHistory(depth int) *History {
	return &History{depth: max(1, depth)}
}

// Record adds a state, dropping the oldest once depth is exceeded
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether hash matches a recorded state and, if so, how many
// generations ago it was seen. A still life repeats with period 1.
func (h *History) Repeats(hash string) (period int, ok bool) {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			return len(h.hashes) - i, true
		}
	}
	return 0, false
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}
