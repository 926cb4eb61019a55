package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/sweephull/dbg"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures into point sets. This is not a full (or
// even correct) svg parser. It collects the center of every circle, then the
// vertices of every polygon, in document order. If anything goes wrong, it
// dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []Point
	for _, circleEl := range rootEl.FindAll("circle") {
		points = append(points, Point{
			X: parseFixtureFloat(circleEl.Attributes["cx"]),
			Y: parseFixtureFloat(circleEl.Attributes["cy"]),
		})
	}

	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Split(polygonEl.Attributes["points"], " ") {
			if pointString == "" {
				continue
			}
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			points = append(points, Point{
				X: parseFixtureFloat(pointStrings[0]),
				Y: parseFixtureFloat(pointStrings[1]),
			})
		}
	}

	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func parseFixtureFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return f
}

// Some ad hoc point sets

// n points evenly spaced on a circle, starting at angle 0
func CirclePoints(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

// n points uniformly scattered over [-1, 1]²
func ScatteredPoints(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
	}
	return points
}

// Every point index in 0..n-1, in a random order
func ShuffledIndexes(n int, seed int64) []PointIndex {
	rng := rand.New(rand.NewSource(seed))
	indexes := make([]PointIndex, n)
	for i := range indexes {
		indexes[i] = PointIndex(i)
	}
	rng.Shuffle(n, func(i, j int) {
		indexes[i], indexes[j] = indexes[j], indexes[i]
	})
	return indexes
}

// Build a hull by inserting points in the given order. The first one is the
// bootstrap. Edge handles are the insertion position plus one.
func buildHull(center Point, points []Point, order []PointIndex, config Config) *Hull {
	h := NewHullWithConfig(center, points, config)
	for k, p := range order {
		if k == 0 {
			h.InsertFirst(p, EdgeIndex(k+1))
		} else {
			h.Insert(p, EdgeIndex(k+1))
		}
	}
	return h
}

// Walk the cycle both ways from every live point, and check the invariants
// that Validate checks.
func assertCycleIntegrity(t *testing.T, h *Hull) {
	t.Helper()
	require.NoError(t, h.Validate(), "invalid hull: %s", dbg.Dump(h.nodes))
	if h.Len() == 0 {
		return
	}

	forward := h.Points()
	require.Len(t, forward, h.Len())

	start := forward[0]
	p := start
	for i := 0; i < h.Len(); i++ {
		require.Equal(t, forward[i], p)
		p = h.Next(p)
	}
	require.Equal(t, start, p, "walking next %d times should return to the start", h.Len())

	for i := h.Len() - 1; i >= 0; i-- {
		p = h.Prev(p)
		require.Equal(t, forward[i], p, "walking prev should reverse walking next")
	}
}

// Rotate a cycle so that it starts at its smallest element, to compare cycles
// that are equal up to rotation.
func normalizeCycle(cycle []PointIndex) []PointIndex {
	if len(cycle) == 0 {
		return cycle
	}
	minIndex := 0
	for i, p := range cycle {
		if p < cycle[minIndex] {
			minIndex = i
		}
	}
	result := make([]PointIndex, 0, len(cycle))
	result = append(result, cycle[minIndex:]...)
	return append(result, cycle[:minIndex]...)
}
