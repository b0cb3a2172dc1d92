package model

// DefaultHistoryDepth is how many generations a History remembers by default
const DefaultHistoryDepth = 5

// History stores fingerprints of recent generations for cycle detection
type History struct {
	depth        int
	fingerprints []string
}

// NewHistory creates a history that remembers the last depth generations
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record adds the world to the history and drops the oldest entry past the depth
func (h *History) Record(w World) {
	h.fingerprints = append(h.fingerprints, w.Fingerprint())
	if len(h.fingerprints) > h.depth {
		h.fingerprints = h.fingerprints[1:]
	}
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.fingerprints)
}

// Period returns how many generations ago w last appeared in the history, or 0 if
// it is not there. A still life reports 1, a blinker 2.
func (h *History) Period(w World) int {
	current := w.Fingerprint()
	for i := len(h.fingerprints) - 1; i >= 0; i-- {
		if h.fingerprints[i] == current {
			return len(h.fingerprints) - i
		}
	}
	return 0
}

// IsStagnant checks if the world repeats a recorded generation (static state or cycle)
func (h *History) IsStagnant(w World) bool {
	return h.Period(w) > 0
}
