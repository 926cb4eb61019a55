package internal

import "sort"

// A Sweep grows the convex hull of a point set outwards from a center inside
// it. Points are added in order of distance from the center. Each one is
// located on the current boundary, spliced in, and then any boundary points
// that it leaves inside the triangle (center, prev, next) are erased. After
// every point has been added, the boundary is the convex hull,
// counterclockwise.
//
// Every boundary point carries the half-edge running to its successor, so the
// edge returned by GetEdge is the edge that a new point splits.
type Sweep struct {
	Points []Point
	Center Point
	Hull   *Hull
	Edges  *EdgeArena

	ids              []PointIndex
	squaredDistances []float64
}

// NewSweep creates a sweep around the centroid of the points, which is
// strictly inside their convex hull unless the points are all collinear.
func NewSweep(points []Point, config Config) *Sweep {
	return NewSweepAround(Centroid(points), points, config)
}

func NewSweepAround(center Point, points []Point, config Config) *Sweep {
	return &Sweep{
		Points: points,
		Center: center,
		Hull:   NewHullWithConfig(center, points, config),
		// Each insertion mints two edges, and each erasure one more
		Edges: NewEdgeArena(3 * len(points)),
	}
}

func Centroid(points []Point) Point {
	var sum Point
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Sorting a sweep sorts its ids by distance from the center, breaking ties
// lexicographically so the order is deterministic.

func (s *Sweep) Len() int {
	return len(s.ids)
}

func (s *Sweep) Swap(i, j int) {
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
}

func (s *Sweep) Less(i, j int) bool {
	d1 := s.squaredDistances[s.ids[i]]
	d2 := s.squaredDistances[s.ids[j]]
	if d1 != d2 {
		return d1 < d2
	}
	return lexLess(s.Points[s.ids[i]], s.Points[s.ids[j]])
}

func lexLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Returns the lexicographically lowest and highest points, preferring the
// first of any duplicates, and whether every point lies on the line through
// them.
func (s *Sweep) extremes() (lo, hi PointIndex, collinear bool) {
	for i, p := range s.Points {
		if lexLess(p, s.Points[lo]) {
			lo = PointIndex(i)
		}
		if lexLess(s.Points[hi], p) {
			hi = PointIndex(i)
		}
	}
	a, b := s.Points[lo], s.Points[hi]
	for _, p := range s.Points {
		if Orient2D(a, b, p) != 0 {
			return lo, hi, false
		}
	}
	return lo, hi, true
}

// Run adds every point, nearest to the center first, and returns the
// resulting boundary.
//
// Collinear input has no interior for the center to sit in, and nothing could
// ever be pruned. The boundary is then just the two ends of the line, or a
// single point when every point coincides.
func (s *Sweep) Run() []PointIndex {
	n := len(s.Points)
	if n == 0 {
		return nil
	}
	if lo, hi, collinear := s.extremes(); collinear {
		s.Add(lo)
		if s.Points[hi] != s.Points[lo] {
			s.Add(hi)
		}
		return s.Boundary()
	}
	s.ids = make([]PointIndex, n)
	s.squaredDistances = make([]float64, n)
	for i, p := range s.Points {
		s.ids[i] = PointIndex(i)
		d := p.Sub(s.Center)
		s.squaredDistances[i] = d.Dot(d)
	}
	sort.Sort(s)

	for _, p := range s.ids {
		s.Add(p)
	}
	return s.Boundary()
}

// Add puts a single point on the boundary and repairs convexity around it.
// Returns whether the point is still on the boundary afterwards.
func (s *Sweep) Add(p PointIndex) bool {
	h := s.Hull
	if h.Len() == 0 {
		h.InsertFirst(p, s.Edges.Add(p, p))
		return true
	}

	// The edge we split runs from our new prev to our new next
	split := s.Edges.Get(h.GetEdge(p))
	h.Insert(p, s.Edges.Add(p, split.Dest))
	h.Update(split.Origin, s.Edges.Add(split.Origin, p))

	pending := []PointIndex{split.Dest, split.Origin, p}
	for len(pending) > 0 {
		q := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if !h.IsLive(q) || !s.isInterior(q) {
			continue
		}
		prev, next := h.Prev(q), h.Next(q)
		h.Erase(q)
		h.Update(prev, s.Edges.Add(prev, next))
		pending = append(pending, prev, next)
	}
	return h.IsLive(p)
}

// A boundary point is interior once it sits inside or on the triangle formed by
// the center and its neighbors. Neighbors half a turn or more apart don't form
// such a triangle, so nothing between them can be pruned yet.
func (s *Sweep) isInterior(q PointIndex) bool {
	h := s.Hull
	if h.Len() < 3 {
		return false
	}
	a := s.Points[h.Prev(q)]
	b := s.Points[h.Next(q)]
	if Orient2D(s.Center, a, b) <= 0 {
		return false
	}
	return InTriangle(s.Center, a, b, s.Points[q])
}

// The current boundary points, counterclockwise from the lowest order.
func (s *Sweep) Boundary() []PointIndex {
	if s.Hull.Len() == 0 {
		return nil
	}
	return s.Hull.Points()
}

// The current boundary as half-edges, in the same order as Boundary.
func (s *Sweep) BoundaryEdges() []HalfEdge {
	if s.Hull.Len() == 0 {
		return nil
	}
	var edges []HalfEdge
	for it := s.Hull.Values(); it.Next(); {
		edges = append(edges, s.Edges.Get(it.Edge()))
	}
	return edges
}
