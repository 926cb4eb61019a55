package internal

// A HullIterator walks the live hull exactly once, counterclockwise, starting
// at the lowest-order live point. It never modifies the hull. Behavior is
// undefined if the hull is modified during iteration.
//
//	for it := hull.Values(); it.Next(); {
//		use(it.Edge())
//	}
type HullIterator struct {
	hull    *Hull
	start   PointIndex
	current PointIndex
	started bool
}

// Values returns a fresh iterator over the hull. Calling it again restarts
// iteration from the beginning. The hull must not be empty.
func (h *Hull) Values() *HullIterator {
	start := h.first()
	if start == Empty {
		fatalf("Values", Empty, "hull is empty")
	}
	return &HullIterator{hull: h, start: start, current: start}
}

func (it *HullIterator) Next() bool {
	if it.current == Empty {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}
	it.current = it.hull.nodes[it.current].next
	if it.current == it.start {
		it.current = Empty
		return false
	}
	return true
}

// The current point, or Empty once the iterator is exhausted.
func (it *HullIterator) Point() PointIndex {
	return it.current
}

func (it *HullIterator) Edge() EdgeIndex {
	if it.current == Empty {
		fatalf("Edge", Empty, "iterator exhausted")
	}
	return it.hull.nodes[it.current].edge
}

// All edges on the hull, in order.
func (h *Hull) Edges() []EdgeIndex {
	edges := make([]EdgeIndex, 0, h.live)
	for it := h.Values(); it.Next(); {
		edges = append(edges, it.Edge())
	}
	return edges
}

// All live points, in order.
func (h *Hull) Points() []PointIndex {
	points := make([]PointIndex, 0, h.live)
	for it := h.Values(); it.Next(); {
		points = append(points, it.Point())
	}
	return points
}
