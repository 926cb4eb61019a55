// An incremental convex boundary for sweep-hull triangulation.
//
// The boundary keeps the points inserted so far in a circle ordered by angle
// around a fixed center, and answers "which boundary edge does this new point
// cross on its way to the center" in expected constant time. Each boundary
// point carries an opaque edge handle for the triangulator's mesh.
//
// The Hull type panics when its contract is broken, since that always means a
// bug in the caller. The functions in this package recover those panics and
// return them as errors.
package sweephull

import "github.com/osuushi/sweephull/internal"

type Point = internal.Point
type PointIndex = internal.PointIndex
type EdgeIndex = internal.EdgeIndex
type Hull = internal.Hull
type HullIterator = internal.HullIterator
type HullError = internal.HullError
type Config = internal.Config

const Empty = internal.Empty
const NoEdge = internal.NoEdge
const DefaultBucketCount = internal.DefaultBucketCount

func NewHull(center Point, points []Point) *Hull {
	return internal.NewHull(center, points)
}

func NewHullWithConfig(center Point, points []Point, config Config) *Hull {
	return internal.NewHullWithConfig(center, points, config)
}

// Compute the convex hull of a set of points. The result lists indexes into
// points, counterclockwise. Interior and duplicate points are left out. If the
// points are all collinear, the result is the two ends of the line.
func ConvexHull(points []Point, config Config) (result []PointIndex, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NewSweep(points, config).Run(), nil
}

// Trace inserts points into a fresh hull around center, in the given order,
// and returns the boundary's edges. Point order[k] gets edge handle k+1. The
// first point is the bootstrap, and each later one is located and spliced in.
// This is mostly useful for checking how a boundary evolves.
func Trace(center Point, points []Point, order []PointIndex, config Config) (result []EdgeIndex, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	h := internal.NewHullWithConfig(center, points, config)
	for k, p := range order {
		e := EdgeIndex(k + 1)
		if k == 0 {
			h.InsertFirst(p, e)
		} else {
			h.Insert(p, e)
		}
	}
	return h.Edges(), nil
}
