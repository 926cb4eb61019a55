package internal

import (
	"math"
	"sort"
)

// An AngularOrder gives every candidate point its fixed rank around the
// center. Ranks are a permutation of 0..n-1, and sorting points by rank sorts
// them by non-decreasing pseudo-angle. It is computed once and never changes.
type AngularOrder []int

type angleKey struct {
	point PointIndex
	key   float64
}

func NewAngularOrder(center Point, points []Point, angle AngleFunc) AngularOrder {
	if angle == nil {
		angle = PseudoAngle
	}

	scratch := make([]angleKey, len(points))
	for i, p := range points {
		scratch[i] = angleKey{PointIndex(i), angle(p.Sub(center))}
	}
	sort.Slice(scratch, func(i, j int) bool {
		return scratch[i].less(scratch[j])
	})

	order := make(AngularOrder, len(points))
	for rank, k := range scratch {
		order[k.point] = rank
	}
	return order
}

// Keys compare by value, then by point index, so equal angles still get
// distinct ranks. NaN keys sort after everything else.
func (a angleKey) less(b angleKey) bool {
	aNaN, bNaN := math.IsNaN(a.key), math.IsNaN(b.key)
	switch {
	case aNaN != bNaN:
		return bNaN
	case !aNaN && a.key != b.key:
		return a.key < b.key
	}
	return a.point < b.point
}

// Points sorted by rank. This is mostly useful for tests and debugging.
func (o AngularOrder) Sorted() []PointIndex {
	sorted := make([]PointIndex, len(o))
	for i, rank := range o {
		sorted[rank] = PointIndex(i)
	}
	return sorted
}
