package symmetry

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape so the axis is visible past the polygon
const drawPadding = 40

// Render the polygon into an image context. If axis is non-nil, it is drawn
// across the whole image, along with the polygon's reflection across it, which
// should trace the polygon exactly.
func Render(poly Polygon, axis *Axis, scale float64) *gg.Context {
	minX, minY, maxX, maxY := poly.Bounds()

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	tracePolygon(c, poly)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if axis == nil || axis.IsDegenerate(ExactTolerance) {
		return c
	}

	// Extend the axis far enough to cross the whole image
	reach := math.Hypot(maxX-minX, maxY-minY) + 2*drawPadding/scale
	center := axis.Line.Midpoint().Point
	dx := axis.Line.B.X - axis.Line.A.X
	dy := axis.Line.B.Y - axis.Line.A.Y
	length := math.Hypot(dx, dy)
	dx, dy = dx/length*reach, dy/length*reach
	c.MoveTo(center.X-dx, center.Y-dy)
	c.LineTo(center.X+dx, center.Y+dy)
	c.SetRGB(1, 0.2, 0.2)
	c.Stroke()

	mirrored := Polygon{Points: make([]Point, len(poly.Points))}
	for i, p := range poly.Points {
		mirrored.Points[i] = axis.Line.Reflect(p)
	}
	c.SetDash(6, 4)
	c.SetLineWidth(1)
	tracePolygon(c, mirrored)
	c.SetRGB(1, 1, 0)
	c.Stroke()
	c.SetDash()
	return c
}

// The scale at which the polygon's larger dimension spans size pixels.
func FitScale(poly Polygon, size float64) float64 {
	minX, minY, maxX, maxY := poly.Bounds()
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		return 1
	}
	return size / extent
}

func tracePolygon(c *gg.Context, poly Polygon) {
	if len(poly.Points) == 0 {
		return
	}
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func SavePNG(path string, poly Polygon, axis *Axis, scale float64) error {
	c := Render(poly, axis, scale)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a saved image inline in the terminal (iTerm only).
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "previewing %s", path)
}
