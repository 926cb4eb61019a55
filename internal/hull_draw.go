package internal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/sweephull/dbg"
	"github.com/pkg/errors"
)

// Padding around the points so the boundary isn't drawn against the edge
const renderPadding = 50

// Render draws the candidate points, the center and the live boundary. Points
// on the boundary are green, the rest are grey. Y points up.
func (h *Hull) Render(points []Point, center Point, scale float64) *gg.Context {
	minX, maxX := center.X, center.X
	minY, maxY := center.Y, center.Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Dot radius in device pixels, regardless of scale
	radius := 3 / scale

	if h.live > 0 {
		first := true
		for it := h.Values(); it.Next(); {
			p := points[it.Point()]
			if first {
				c.MoveTo(p.X, p.Y)
				first = false
			} else {
				c.LineTo(p.X, p.Y)
			}
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	for i, p := range points {
		if h.nodes[i].next != Empty {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(0.5, 0.5, 0.5)
		}
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}

	c.SetRGB(1, 0, 0)
	c.DrawCircle(center.X, center.Y, radius*1.5)
	c.Fill()
	return c
}

// SavePNG renders the hull to a PNG file. If w is not nil, the image is also
// printed to it with imgcat (iTerm only), which is handy for debugging.
func (h *Hull) SavePNG(path string, points []Point, center Point, scale float64, w io.Writer) error {
	c := h.Render(points, center, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %q", path)
	}
	if w == nil {
		return nil
	}
	return imgcat.CatFile(path, w)
}

func (h *Hull) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hull(%d of %d points, %d buckets)", h.live, len(h.nodes), len(h.buckets))
	if h.live == 0 {
		return b.String()
	}
	b.WriteString(":")
	for it := h.Values(); it.Next(); {
		p := it.Point()
		fmt.Fprintf(&b, "\n  %s %s order=%d bucket=%d edge=%d",
			aurora.Cyan(p),
			aurora.Green(dbg.Name(p)),
			h.nodes[p].order,
			h.bucket(p),
			aurora.Yellow(it.Edge()),
		)
	}
	return b.String()
}
