package symmetry

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance controls how float comparisons are made during symmetry checks.
// Two values are equal if they are within Abs of each other, or within Rel of
// the larger magnitude. Exact comparison misclassifies symmetric polygons as
// soon as their coordinates are irrational (any rotated regular polygon, for
// example), so every comparison in this package goes through a Tolerance.
type Tolerance struct {
	Abs float64
	Rel float64
}

// The tolerance used by the package level API and by NewDetector.
var DefaultTolerance = Tolerance{Abs: 1e-9, Rel: 1e-9}

// A Tolerance of zero compares exactly.
var ExactTolerance = Tolerance{}

func (tol Tolerance) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	return scalar.EqualWithinAbsOrRel(a, b, tol.Abs, tol.Rel)
}

func (tol Tolerance) PointsEqual(p, q Point) bool {
	return tol.Equal(p.X, q.X) && tol.Equal(p.Y, q.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}
