// sweephull computes the convex hull of a point set by growing an angular
// boundary outwards from the centroid, and prints the hull's point indexes in
// counterclockwise order.
//
// Input on stdin should be newline separated points in the form "x y". Blank
// lines and lines starting with # are ignored. Alternatively, --svg reads the
// centers of every <circle> and the vertices of every <polygon> in an SVG file.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/sweephull/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	buckets = kingpin.Flag("buckets", "Number of angular buckets. 0 uses the default, -1 scales with the point count.").Default("0").Int()
	svgPath = kingpin.Flag("svg", "Read points from an SVG file instead of stdin.").ExistingFile()
	random  = kingpin.Flag("random", "Ignore input and generate this many random points in the unit square.").Int()
	seed    = kingpin.Flag("seed", "Seed for --random.").Default("1").Int64()
	pngPath = kingpin.Flag("png", "Render the points and hull to this PNG file.").String()
	scale   = kingpin.Flag("scale", "Pixels per unit when rendering.").Default("100").Float64()
	show    = kingpin.Flag("show", "Print the rendered PNG to the terminal (iTerm only). Requires --png.").Bool()
	check   = kingpin.Flag("check", "Validate the hull's internal invariants after the sweep.").Bool()
	verbose = kingpin.Flag("verbose", "Development logging.").Short('v').Bool()
)

func main() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if err := run(logger, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("sweep failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func run(logger *zap.Logger, in io.Reader, out io.Writer) (err error) {
	var points []internal.Point
	switch {
	case *random > 0:
		points = randomPoints(*random, *seed)
	case *svgPath != "":
		points, err = readSVGFile(*svgPath)
	default:
		points, err = readPoints(in)
	}
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return errors.New("no points given")
	}
	logger.Info("read points", zap.Int("count", len(points)))

	// Hull contract violations panic; turn them into errors so they are logged
	defer func() {
		if recoveredErr := internal.HandleHullPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()

	start := time.Now()
	sweep := internal.NewSweep(points, internal.Config{Buckets: *buckets})
	hull := sweep.Run()
	logger.Info("swept hull",
		zap.Int("boundary", len(hull)),
		zap.Int("buckets", sweep.Hull.BucketCount()),
		zap.Int("edges", sweep.Edges.Len()),
		zap.Float64("centerX", sweep.Center.X),
		zap.Float64("centerY", sweep.Center.Y),
		zap.Duration("elapsed", time.Since(start)),
	)
	logger.Debug("boundary", zap.Stringer("hull", sweep.Hull))

	if *check {
		if err := sweep.Hull.Validate(); err != nil {
			return errors.Wrap(err, "hull failed validation")
		}
	}

	w := bufio.NewWriter(out)
	for _, p := range hull {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "writing hull")
	}

	if *pngPath != "" {
		var terminal io.Writer
		if *show {
			terminal = os.Stdout
		}
		if err := sweep.Hull.SavePNG(*pngPath, points, sweep.Center, *scale, terminal); err != nil {
			return err
		}
		logger.Info("rendered hull", zap.String("path", *pngPath))
	}
	return nil
}

func readPoints(in io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}

func readSVGFile(path string) ([]internal.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return readSVG(f)
}

// Not a real SVG reader. Transforms are ignored, and only circle centers and
// polygon vertices are collected.
func readSVG(r io.Reader) ([]internal.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []internal.Point
	for _, circle := range root.FindAll("circle") {
		point, err := parsePoint(circle.Attributes["cx"] + " " + circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}
	for _, polygon := range root.FindAll("polygon") {
		for _, pair := range strings.Fields(polygon.Attributes["points"]) {
			point, err := parsePoint(pair)
			if err != nil {
				return nil, errors.Wrap(err, "polygon")
			}
			points = append(points, point)
		}
	}
	return points, nil
}

func randomPoints(n int, seed int64) []internal.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]internal.Point, n)
	for i := range points {
		points[i] = internal.Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return points
}
