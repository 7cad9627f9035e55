package symmetry

import (
	"log"
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Detector decides whether polygons have mirror symmetry. The zero value
// compares floats exactly; use NewDetector for DefaultTolerance.
//
// Each polygon is scaled to unit size around the origin before its tolerance
// is applied, so Tolerance.Abs acts as a fraction of the polygon's extent.
type Detector struct {
	Tolerance Tolerance
	// Check candidate axes concurrently. The reported axis is the same as it
	// would be without this.
	Parallel bool
	// If set, rejected candidates are logged here.
	Log *log.Logger
}

func NewDetector() *Detector {
	return &Detector{Tolerance: DefaultTolerance}
}

func (d *Detector) HasMirrorSymmetry(poly Polygon) bool {
	_, ok := d.FindAxis(poly)
	return ok
}

// Find an axis of mirror symmetry. If there are several, the first candidate
// (in the order given by CandidateAxes) is returned. Panics with a
// PreconditionError if the polygon has fewer than three vertices.
func (d *Detector) FindAxis(poly Polygon) (Axis, bool) {
	candidates := poly.CandidateAxes()
	f := newFrame(poly)
	unit := f.polygon(poly)
	if d.Parallel {
		return d.findAxisParallel(unit, f, candidates)
	}
	for _, axis := range candidates {
		if d.isAxis(unit, f, axis) {
			return axis, true
		}
	}
	return Axis{}, false
}

func (d *Detector) findAxisParallel(unit Polygon, f frame, candidates []Axis) (Axis, bool) {
	// Each goroutine owns one slot, so there is nothing to lock
	passed := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			passed[i] = d.isAxis(unit, f, candidates[i])
		}(i)
	}
	wg.Wait()

	for i, ok := range passed {
		if ok {
			return candidates[i], true
		}
	}
	return Axis{}, false
}

// Check every vertex pair against the axis, stopping at the first failure.
//
// Two points p and q mirror each other across an axis iff the line through p
// and q meets the axis at its own midpoint, and is perpendicular to the axis.
// If every pair mirrors, the polygon is symmetric across the axis.
func (d *Detector) IsAxis(poly Polygon, axis Axis) bool {
	f := newFrame(poly)
	return d.isAxis(f.polygon(poly), f, axis)
}

// The polygon has already been mapped into the frame. The axis has not, so
// that rejections are logged in the caller's coordinates.
func (d *Detector) isAxis(unit Polygon, f frame, axis Axis) bool {
	unitAxis := Axis{Kind: axis.Kind, Line: f.line(axis.Line), Index: axis.Index}
	if unitAxis.IsDegenerate(d.Tolerance) {
		d.logf("rejected degenerate %s", axis)
		return false
	}
	for _, pair := range unitAxis.Pairs(len(unit.Points)) {
		pq := Line{unit.Points[pair[0]], unit.Points[pair[1]]}
		if !pq.Midpoint().EqualTo(pq.Intersection(unitAxis.Line), d.Tolerance) {
			d.logf("rejected %s: midpoint of %d-%d is off the axis", axis, pair[0], pair[1])
			return false
		}
		if !pq.IsPerpendicularTo(unitAxis.Line, d.Tolerance) {
			d.logf("rejected %s: %d-%d is not perpendicular", axis, pair[0], pair[1])
			return false
		}
	}
	return true
}

func (d *Detector) logf(format string, args ...interface{}) {
	if d.Log != nil {
		d.Log.Printf(format, args...)
	}
}

// A frame maps a polygon's bounding box onto a box of unit size centered on
// the origin. Checks are made in the frame, so a tolerance means the same thing
// for a polygon of any size at any position.
//
// Coordinates far from the origin relative to the polygon's size have already
// lost precision before they get here, which no frame can recover.
type frame struct {
	center r2.Vec
	extent float64
}

func newFrame(poly Polygon) frame {
	minX, minY, maxX, maxY := poly.Bounds()
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1
	}
	return frame{center: poly.Center().vec(), extent: extent}
}

func (f frame) point(p Point) Point {
	return pointFromVec(f.vec(p.vec()))
}

func (f frame) vec(v r2.Vec) r2.Vec {
	return r2.Scale(1/f.extent, r2.Sub(v, f.center))
}

func (f frame) line(l Line) Line {
	return Line{f.point(l.A), f.point(l.B)}
}

func (f frame) polygon(poly Polygon) Polygon {
	return poly.mapPoints(f.vec)
}
