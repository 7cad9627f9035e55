package symmetry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Create a line through two points. Panics with ErrDegenerateLine if the points
// are identical, since they don't define a line.
func NewLine(a, b Point) Line {
	if a == b {
		fatalf(ErrDegenerateLine, "both points are %s", a)
	}
	return Line{A: a, B: b}
}

// Midpoint of the segment which defines the line.
func (l Line) Midpoint() MaybePoint {
	return Just(l.A.Midpoint(l.B))
}

func (l Line) direction() r2.Vec {
	return r2.Sub(l.B.vec(), l.A.vec())
}

// Intersection of the two infinite lines. Parallel lines have no intersection,
// and neither do coincident lines, since there is no single point to report.
// Both give NoPoint.
//
// The solved parameter is substituted into this line's parametric form, not the
// other line's.
func (l Line) Intersection(other Line) MaybePoint {
	d1 := l.direction()
	d2 := other.direction()
	denom := r2.Cross(d1, d2)
	if denom == 0 {
		return NoPoint
	}

	w := r2.Sub(l.A.vec(), other.A.vec())
	ua := r2.Cross(d2, w) / denom
	return Just(pointFromVec(r2.Add(l.A.vec(), r2.Scale(ua, d1))))
}

// Lines are perpendicular when the cosine of the angle between them is zero.
// The cosine is unitless, so the tolerance means the same thing at any scale.
// A zero length line is not perpendicular to anything.
func (l Line) IsPerpendicularTo(other Line, tol Tolerance) bool {
	d1 := l.direction()
	d2 := other.direction()
	lengths := r2.Norm(d1) * r2.Norm(d2)
	if lengths == 0 {
		return false
	}
	return tol.Equal(math.Abs(r2.Dot(d1, d2))/lengths, 0)
}

// Reflect a point across the line.
func (l Line) Reflect(p Point) Point {
	d := l.direction()
	v := r2.Sub(p.vec(), l.A.vec())
	foot := r2.Add(l.A.vec(), r2.Scale(r2.Dot(v, d)/r2.Dot(d, d), d))
	return pointFromVec(r2.Sub(r2.Scale(2, foot), p.vec()))
}

func (l Line) String() string {
	return fmt.Sprintf("%s-%s", l.A, l.B)
}
