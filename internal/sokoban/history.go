package sokoban

// DefaultHistoryDepth is the number of undo steps kept per level.
const DefaultHistoryDepth = 100

// snapshot captures the state needed to undo one move.
type snapshot struct {
	grid   Grid
	player Position
	moves  int
}

// History is a fixed-capacity stack of snapshots backed by a ring buffer.
// Pushing onto a full history evicts the oldest entry.
type History struct {
	buf   []snapshot
	start int // index of the oldest entry
	size  int
}

// NewHistory creates a history holding at most capacity snapshots.
// A capacity of zero disables undo: every push is dropped.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{buf: make([]snapshot, capacity)}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum number of snapshots.
func (h *History) Cap() int {
	return len(h.buf)
}

// push appends s as the newest entry.
func (h *History) push(s snapshot) {
	if len(h.buf) == 0 {
		return
	}
	if h.size == len(h.buf) {
		// Overwrite the oldest slot and advance the start.
		h.buf[h.start] = s
		h.start = (h.start + 1) % len(h.buf)
		return
	}
	h.buf[(h.start+h.size)%len(h.buf)] = s
	h.size++
}

// pop removes and returns the newest entry.
func (h *History) pop() (snapshot, bool) {
	if h.size == 0 {
		return snapshot{}, false
	}
	idx := (h.start + h.size - 1) % len(h.buf)
	s := h.buf[idx]
	h.buf[idx] = snapshot{}
	h.size--
	return s, true
}

// Clear drops every entry.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = snapshot{}
	}
	h.start = 0
	h.size = 0
}
