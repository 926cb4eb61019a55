package internal

import "fmt"

// A minimal half-edge store. The hull treats edges as opaque, but something
// has to mint the handles; this is the smallest thing that can. Edges are kept
// in a dense slice and referenced by index, with index 0 reserved so that
// NoEdge never names a real edge.

type HalfEdge struct {
	Origin, Dest PointIndex
}

func (e HalfEdge) String() string {
	return fmt.Sprintf("(%d -> %d)", e.Origin, e.Dest)
}

type EdgeArena struct {
	edges []HalfEdge
}

func NewEdgeArena(capacity int) *EdgeArena {
	edges := make([]HalfEdge, 1, capacity+1)
	edges[NoEdge] = HalfEdge{Empty, Empty}
	return &EdgeArena{edges}
}

func (a *EdgeArena) Add(origin, dest PointIndex) EdgeIndex {
	e := EdgeIndex(len(a.edges))
	a.edges = append(a.edges, HalfEdge{origin, dest})
	return e
}

func (a *EdgeArena) Get(e EdgeIndex) HalfEdge {
	if !e.Valid() || int(e) >= len(a.edges) {
		fatalf("EdgeArena.Get", Empty, "invalid edge handle %d", e)
	}
	return a.edges[e]
}

// Number of edges minted so far.
func (a *EdgeArena) Len() int {
	return len(a.edges) - 1
}
