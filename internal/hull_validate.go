package internal

import "github.com/pkg/errors"

// Validate checks the hull's structural invariants and returns the first
// violation found, or nil. It walks every node, so it is meant for tests and
// debugging rather than the insertion loop.
//
// The rules are:
// 1. Walking next from the first live point visits every live point exactly
// once before returning to the start, and prev is the exact reverse.
// 2. Orders strictly increase around the cycle, wrapping exactly once.
// 3. Every live point has an edge.
// 4. Every occupied bucket points at the lowest-order live point in that
// bucket, and every bucket with a live point is occupied.
func (h *Hull) Validate() error {
	live := 0
	lowest := make(map[int]PointIndex)
	for i, n := range h.nodes {
		p := PointIndex(i)
		if (n.next == Empty) != (n.prev == Empty) {
			return errors.Errorf("point %d is half linked (prev %d, next %d)", p, n.prev, n.next)
		}
		if n.next == Empty {
			continue
		}
		live++
		if !n.edge.Valid() {
			return errors.Errorf("live point %d has no edge", p)
		}
		b := h.bucket(p)
		if q, ok := lowest[b]; !ok || n.order < h.nodes[q].order {
			lowest[b] = p
		}
	}
	if live != h.live {
		return errors.Errorf("found %d live points, but hull counts %d", live, h.live)
	}

	for b, head := range h.buckets {
		want, ok := lowest[b]
		if !ok {
			want = Empty
		}
		if head != want {
			return errors.Errorf("bucket %d has head %d, expected %d", b, head, want)
		}
	}

	if live == 0 {
		return nil
	}

	start := h.first()
	p := start
	wraps := 0
	for i := 0; i < live; i++ {
		n := h.nodes[p]
		if h.nodes[n.next].prev != p {
			return errors.Errorf("point %d links to %d, which links back to %d", p, n.next, h.nodes[n.next].prev)
		}
		if h.nodes[n.next].order <= n.order {
			wraps++
		}
		p = n.next
		if p == start && i != live-1 {
			return errors.Errorf("cycle closed after %d of %d points", i+1, live)
		}
	}
	if p != start {
		return errors.Errorf("cycle did not close after %d points", live)
	}
	if wraps != 1 {
		return errors.Errorf("order wraps %d times around the cycle", wraps)
	}
	return nil
}
