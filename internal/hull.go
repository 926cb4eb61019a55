package internal

type node struct {
	// The point's absolute rank around the center. Its bucket is derived from
	// this and never changes.
	order int

	edge EdgeIndex

	// Neighbors traveling counterclockwise around the hull. Both are Empty when
	// the point is not on the hull.
	prev, next PointIndex
}

// The Hull stores a set of points which form a counterclockwise topological
// circle about the center of the triangulation.
//
// Each point is associated with an EdgeIndex into a half-edge data structure,
// but the Hull does not concern itself with such things.
//
// The Hull supports one kind of lookup: for a point P, find the live point Q
// with the highest order below P. Projecting P towards the center crosses the
// edge beginning at Q, so that is the edge which should be split.
//
// A Hull is not safe for concurrent use. Each triangulation owns its own.
type Hull struct {
	buckets []PointIndex
	nodes   []node
	live    int
}

func NewHull(center Point, points []Point) *Hull {
	return NewHullWithConfig(center, points, Config{})
}

func NewHullWithConfig(center Point, points []Point, config Config) *Hull {
	order := NewAngularOrder(center, points, config.angle())

	// Nodes which aren't on the hull have both links set to Empty, so that we
	// can detect them when inserting.
	nodes := make([]node, len(points))
	for i := range nodes {
		nodes[i] = node{order: order[i], prev: Empty, next: Empty}
	}

	buckets := make([]PointIndex, config.bucketCount(len(points)))
	for i := range buckets {
		buckets[i] = Empty
	}

	return &Hull{buckets: buckets, nodes: nodes}
}

// Inserts the first point, along with its associated edge. This must be the
// first mutation on a new hull.
func (h *Hull) InsertFirst(p PointIndex, e EdgeIndex) {
	h.checkPoint("InsertFirst", p)
	if h.live != 0 {
		fatalf("InsertFirst", p, "hull already has %d live points", h.live)
	}
	b := h.bucket(p)
	if h.buckets[b] != Empty {
		fatalf("InsertFirst", p, "bucket %d is already occupied by %d", b, h.buckets[b])
	}
	h.buckets[b] = p

	// Tie this point into a tiny loop
	n := &h.nodes[p]
	n.next = p
	n.prev = p
	n.edge = e
	h.live = 1
}

// Replace the edge of a point which is already on the hull.
func (h *Hull) Update(p PointIndex, e EdgeIndex) {
	h.checkLive("Update", p)
	h.nodes[p].edge = e
}

// For a point which is not on the hull, returns the (prev, next) pair of live
// points bracketing it. This is the edge that the point intersects when
// projected towards the triangulation center.
func (h *Hull) Locate(p PointIndex) (prev, next PointIndex) {
	h.checkNotEmpty("Locate", p)
	b := h.bucket(p)

	// If the target bucket is empty, search for the next-highest point, then
	// walk back one step to find the next-lowest. This is cheaper than finding
	// the next-lowest bucket and walking to the end of its chain.
	next = h.buckets[b]
	if next == Empty {
		// A filled bucket must exist somewhere, since the hull is not empty
		t := b
		for h.buckets[t] == Empty {
			t = (t + 1) % len(h.buckets)
		}
		next = h.buckets[t]
	} else {
		// The bucket is occupied, so walk its chain until we find a point above
		// ours, or leave the bucket. Leaving the bucket handles wrapping around.
		// If every live point is in this bucket and below ours, we come back to
		// the head, which is the right place to wrap to.
		head := next
		order := h.nodes[p].order
		for h.nodes[next].order < order && h.bucket(next) == b {
			next = h.nodes[next].next
			if next == head {
				break
			}
		}
	}

	return h.nodes[next].prev, next
}

// The edge that a point about to be inserted at p's position would split.
func (h *Hull) GetEdge(p PointIndex) EdgeIndex {
	h.checkNotEmpty("GetEdge", p)
	prev, _ := h.Locate(p)
	return h.nodes[prev].edge
}

func (h *Hull) Edge(p PointIndex) EdgeIndex {
	h.checkLive("Edge", p)
	return h.nodes[p].edge
}

// Insert a point which is not on the hull, splicing it between the live points
// that bracket it.
func (h *Hull) Insert(p PointIndex, e EdgeIndex) {
	h.checkNotEmpty("Insert", p)
	if h.nodes[p].next != Empty {
		fatalf("Insert", p, "point is already on the hull")
	}
	b := h.bucket(p)
	prev, next := h.Locate(p)

	// If the bucket is empty, or the new point sorts below the bucket's head,
	// then it becomes the head. The head is always the bucket's lowest live
	// point, which is what Locate's walk relies on.
	head := h.buckets[b]
	if head == Empty || (head == next && h.nodes[p].order < h.nodes[head].order) {
		h.buckets[b] = p
	}

	// Write our new node data, leaving order fixed
	n := &h.nodes[p]
	n.edge = e
	n.next = next
	n.prev = prev

	// Stitch into the linked list
	h.nodes[next].prev = p
	h.nodes[prev].next = p
	h.live++
}

// Removes the given point from the hull.
func (h *Hull) Erase(p PointIndex) {
	h.checkLive("Erase", p)
	b := h.bucket(p)

	n := &h.nodes[p]
	next, prev := n.next, n.prev

	// Cut this node out of the linked list
	h.nodes[next].prev = prev
	h.nodes[prev].next = next
	n.next = Empty
	n.prev = Empty
	h.live--

	// If this was the head of its bucket, the next point takes over if it is in
	// the same bucket. Otherwise the bucket is now empty.
	if h.buckets[b] == p {
		if next != p && h.bucket(next) == b {
			h.buckets[b] = next
		} else {
			h.buckets[b] = Empty
		}
	}
}

// Number of live points.
func (h *Hull) Len() int {
	return h.live
}

// Number of candidate points the hull was built over.
func (h *Hull) PointCount() int {
	return len(h.nodes)
}

func (h *Hull) BucketCount() int {
	return len(h.buckets)
}

func (h *Hull) IsLive(p PointIndex) bool {
	h.checkPoint("IsLive", p)
	return h.nodes[p].next != Empty
}

func (h *Hull) Next(p PointIndex) PointIndex {
	h.checkLive("Next", p)
	return h.nodes[p].next
}

func (h *Hull) Prev(p PointIndex) PointIndex {
	h.checkLive("Prev", p)
	return h.nodes[p].prev
}

// The point's fixed angular rank.
func (h *Hull) Order(p PointIndex) int {
	h.checkPoint("Order", p)
	return h.nodes[p].order
}

func (h *Hull) Bucket(p PointIndex) int {
	h.checkPoint("Bucket", p)
	return h.bucket(p)
}

// Looks up what bucket a given point will fall into
func (h *Hull) bucket(p PointIndex) int {
	return bucketOf(h.nodes[p].order, len(h.buckets), len(h.nodes))
}

// The lowest-order live point, or Empty.
func (h *Hull) first() PointIndex {
	for _, head := range h.buckets {
		if head != Empty {
			return head
		}
	}
	return Empty
}

func (h *Hull) checkPoint(op string, p PointIndex) {
	if p < 0 || int(p) >= len(h.nodes) {
		fatalf(op, p, "point out of range [0, %d)", len(h.nodes))
	}
}

// Fails unless the hull has at least one live point.
func (h *Hull) checkNotEmpty(op string, p PointIndex) {
	h.checkPoint(op, p)
	if h.live == 0 {
		fatalf(op, p, "hull is empty")
	}
}

func (h *Hull) checkLive(op string, p PointIndex) {
	h.checkPoint(op, p)
	if h.nodes[p].next == Empty {
		fatalf(op, p, "point is not on the hull")
	}
}
