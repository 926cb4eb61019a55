package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/sweephull/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1.5 -2")
	require.NoError(t, err)
	assert.Equal(t, internal.Point{X: 1.5, Y: -2}, p)

	p, err = parsePoint("3,4")
	require.NoError(t, err)
	assert.Equal(t, internal.Point{X: 3, Y: 4}, p)

	_, err = parsePoint("1 2 3")
	assert.Error(t, err)
	_, err = parsePoint("x 2")
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	input := "# a square\n0 0\n1 0\n\n1 1\n0 1\n"
	points, err := readPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, points, 4)

	_, err = readPoints(strings.NewReader("0 0\nnope\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "nope"`)
}

func TestReadSVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg">
  <circle cx="1" cy="2" r="1"/>
  <polygon points="0,0 4,0 4,4"/>
</svg>`
	points, err := readSVG(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 1, Y: 2}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, points)
}

func TestRandomPoints(t *testing.T) {
	a := randomPoints(10, 3)
	assert.Len(t, a, 10)
	assert.Equal(t, a, randomPoints(10, 3), "same seed, same points")
}

func TestRun(t *testing.T) {
	input := "0 0\n2 0\n2 2\n0 2\n1 1\n"
	var out bytes.Buffer
	require.NoError(t, run(zap.NewNop(), strings.NewReader(input), &out))

	lines := strings.Fields(out.String())
	assert.ElementsMatch(t, []string{"0", "1", "2", "3"}, lines)

	err := run(zap.NewNop(), strings.NewReader(""), &out)
	assert.EqualError(t, err, "no points given")
}
