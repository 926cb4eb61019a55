package internal

import (
	"math"

	"github.com/golang/geo/r2"
)

// Points are plain r2 points owned by the caller. The hull only reads them
// once, at construction.
type Point = r2.Point

// A PointIndex is the caller's handle into their point slice.
type PointIndex int

// Empty is the sentinel PointIndex. It never names a real point, and is used
// for unlinked nodes and unoccupied buckets.
const Empty PointIndex = math.MaxInt

// An EdgeIndex is an opaque handle into a half-edge mesh. The hull stores and
// returns these verbatim.
type EdgeIndex uint32

// NoEdge is the zero EdgeIndex, reserved to mean "not yet assigned". Real
// handles are always nonzero.
const NoEdge EdgeIndex = 0

func (e EdgeIndex) Valid() bool {
	return e != NoEdge
}
