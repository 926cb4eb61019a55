package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHull_Render(t *testing.T) {
	points := CirclePoints(4, 1)
	h := buildHull(Point{}, points, []PointIndex{0, 1, 2}, Config{})

	c := h.Render(points, Point{}, 10)
	assert.Equal(t, 120, c.Width())
	assert.Equal(t, 120, c.Height())

	// The background corner stays black
	r, g, b, _ := c.Image().At(0, 0).RGBA()
	assert.Zero(t, r+g+b)
}

func TestHull_SavePNG(t *testing.T) {
	points := ScatteredPoints(50, 1)
	sweep := NewSweep(points, Config{})
	sweep.Run()

	path := filepath.Join(t.TempDir(), "hull.png")
	require.NoError(t, sweep.Hull.SavePNG(path, points, sweep.Center, 100, nil))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHull_String(t *testing.T) {
	points := CirclePoints(4, 1)
	h := NewHull(Point{}, points)
	assert.Equal(t, "Hull(0 of 4 points, 1024 buckets)", h.String())

	h.InsertFirst(0, 1)
	h.Insert(2, 2)
	s := h.String()
	assert.True(t, strings.HasPrefix(s, "Hull(2 of 4 points, 1024 buckets):"))
	assert.Equal(t, 2, strings.Count(s, "order="))
}
