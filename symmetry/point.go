package symmetry

import "fmt"

// The invalid point. It is not equal to anything, including itself.
var NoPoint = MaybePoint{}

func Just(p Point) MaybePoint {
	return MaybePoint{Point: p, Valid: true}
}

func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Midpoint of two maybe-points. Invalidity propagates.
func Midpoint(a, b MaybePoint) MaybePoint {
	if !a.Valid || !b.Valid {
		return NoPoint
	}
	return Just(a.Point.Midpoint(b.Point))
}

// Tolerance based equality. Always false if either side is invalid.
func (m MaybePoint) EqualTo(other MaybePoint, tol Tolerance) bool {
	if !m.Valid || !other.Valid {
		return false
	}
	return tol.PointsEqual(m.Point, other.Point)
}

func (m MaybePoint) String() string {
	if !m.Valid {
		return "Ø"
	}
	return m.Point.String()
}
