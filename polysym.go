// Mirror symmetry detection for simple polygons.
//
// Given the vertices of a simple polygon in order, this package decides whether
// the polygon has a reflective line of symmetry, without being told where the
// line might be. Every axis the polygon could possibly have is generated from
// the vertex count, and each is checked by verifying that the vertices on
// either side of it mirror each other.
//
// Comparisons are tolerance based. See Tolerance and DefaultTolerance.
package polysym

import "github.com/osuushi/polysym/symmetry"

type Point = symmetry.Point
type Polygon = symmetry.Polygon
type Axis = symmetry.Axis
type AxisKind = symmetry.AxisKind
type Tolerance = symmetry.Tolerance

const (
	VertexToVertex     = symmetry.VertexToVertex
	VertexToMidpoint   = symmetry.VertexToMidpoint
	MidpointToMidpoint = symmetry.MidpointToMidpoint
)

var (
	DefaultTolerance  = symmetry.DefaultTolerance
	ErrTooFewVertices = symmetry.ErrTooFewVertices
	ErrWrongParity    = symmetry.ErrWrongParity
	ErrDegenerateLine = symmetry.ErrDegenerateLine
)

// Check whether the polygon with the given vertices has an axis of mirror
// symmetry, using DefaultTolerance.
//
// The polygon must be simple, with at least three distinct vertices, in either
// winding order. Only the vertex count is validated; fewer than three vertices
// gives an error wrapping ErrTooFewVertices.
func HasMirrorSymmetry(points ...Point) (bool, error) {
	_, ok, err := FindAxis(DefaultTolerance, points...)
	return ok, err
}

// Like HasMirrorSymmetry, but with an explicit tolerance, and reporting the
// axis found.
func FindAxis(tol Tolerance, points ...Point) (axis Axis, ok bool, err error) {
	defer func() {
		recoveredErr := symmetry.HandleSymmetryPanicRecover(recover())
		if recoveredErr != nil {
			axis = Axis{}
			ok = false
			err = recoveredErr
		}
	}()
	detector := &symmetry.Detector{Tolerance: tol}
	axis, ok = detector.FindAxis(symmetry.Polygon{Points: points})
	return axis, ok, nil
}
