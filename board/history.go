package board

// HistoryLimit is the number of undo steps kept.
const HistoryLimit = 50

// snapshot is the durable part of a Scene. Side and Tool are session
// preferences and are not rolled back by undo.
type snapshot struct {
	unit      int
	view      View
	allies    []Player
	opponents []Player
	bench     []Player
	arrows    []Arrow
	ball      Ball
}

func takeSnapshot(s *Scene) snapshot {
	return snapshot{
		unit:      s.Unit,
		view:      s.View,
		allies:    clonePlayers(s.Allies),
		opponents: clonePlayers(s.Opponents),
		bench:     clonePlayers(s.Bench),
		arrows:    cloneArrows(s.Arrows),
		ball:      s.Ball,
	}
}

func (snap snapshot) restore(s *Scene) {
	s.Unit = snap.unit
	s.View = snap.view
	s.Allies = snap.allies
	s.Opponents = snap.opponents
	s.Bench = snap.bench
	s.Arrows = snap.arrows
	s.Ball = snap.ball
}

func clonePlayers(in []Player) []Player {
	if in == nil {
		return nil
	}
	out := make([]Player, len(in))
	copy(out, in)
	return out
}

func cloneArrows(in []Arrow) []Arrow {
	if in == nil {
		return nil
	}
	out := make([]Arrow, len(in))
	copy(out, in)
	return out
}

// history is a bounded LIFO stack backed by a ring buffer: pushing onto a
// full stack overwrites the oldest entry.
type history struct {
	entries [HistoryLimit]snapshot
	head    int // index of the next free slot
	n       int
}

func (h *history) push(snap snapshot) {
	h.entries[h.head] = snap
	h.head = (h.head + 1) % HistoryLimit
	if h.n < HistoryLimit {
		h.n++
	}
}

func (h *history) pop() (snapshot, bool) {
	if h.n == 0 {
		return snapshot{}, false
	}
	h.head = (h.head - 1 + HistoryLimit) % HistoryLimit
	snap := h.entries[h.head]
	h.entries[h.head] = snapshot{}
	h.n--
	return snap, true
}

func (h *history) len() int { return h.n }
