package symmetry

import (
	"gonum.org/v1/gonum/spatial/r2"
)

func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: points}
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

func (poly Polygon) IsOdd() bool {
	return len(poly.Points)%2 == 1
}

// Panics with ErrTooFewVertices unless the polygon has at least three vertices.
func (poly Polygon) mustBeValid() {
	if len(poly.Points) < 3 {
		fatalf(ErrTooFewVertices, "got %d", len(poly.Points))
	}
}

func (poly Polygon) At(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

func (poly Polygon) NextVertex(i int) int {
	return CircularIndex(i+1, len(poly.Points))
}

func (poly Polygon) PrevVertex(i int) int {
	return CircularIndex(i-1, len(poly.Points))
}

// The vertex diametrically opposite vertex i. Vertex 0's opposite in a
// quadrilateral is 2. Only defined for an even vertex count.
func (poly Polygon) OppositeVertex(i int) int {
	n := len(poly.Points)
	if n%2 != 0 {
		fatalf(ErrWrongParity, "cannot find the opposite vertex in a %d-gon", n)
	}
	return CircularIndex(i+n/2, n)
}

// The endpoints of the edge opposite vertex i. Vertex 0 of a pentagon is
// opposite the edge from 2 to 3. Only defined for an odd vertex count.
func (poly Polygon) OppositeVertices(i int) (first, second int) {
	n := len(poly.Points)
	if n%2 == 0 {
		fatalf(ErrWrongParity, "cannot find the opposite edge in a %d-gon", n)
	}
	first = CircularIndex(i+n/2, n)
	second = CircularIndex(i+n/2+1, n)
	return first, second
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Name: poly.Name}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Relabel the vertices so that vertex k becomes vertex 0. The shape is
// unchanged.
func (poly Polygon) Shift(k int) Polygon {
	newPoly := Polygon{Name: poly.Name, Points: make([]Point, len(poly.Points))}
	for i := range poly.Points {
		newPoly.Points[i] = poly.At(i + k)
	}
	return newPoly
}

// Rotate the polygon by angle radians counterclockwise around center.
func (poly Polygon) Rotate(angle float64, center Point) Polygon {
	return poly.mapPoints(func(v r2.Vec) r2.Vec {
		return r2.Rotate(v, angle, center.vec())
	})
}

func (poly Polygon) Translate(dx, dy float64) Polygon {
	offset := r2.Vec{X: dx, Y: dy}
	return poly.mapPoints(func(v r2.Vec) r2.Vec {
		return r2.Add(v, offset)
	})
}

// Scale about the origin.
func (poly Polygon) Scale(factor float64) Polygon {
	return poly.mapPoints(func(v r2.Vec) r2.Vec {
		return r2.Scale(factor, v)
	})
}

func (poly Polygon) mapPoints(fn func(r2.Vec) r2.Vec) Polygon {
	newPoly := Polygon{Name: poly.Name, Points: make([]Point, len(poly.Points))}
	for i, p := range poly.Points {
		newPoly.Points[i] = pointFromVec(fn(p.vec()))
	}
	return newPoly
}

// Center of the bounding box.
func (poly Polygon) Center() Point {
	minX, minY, maxX, maxY := poly.Bounds()
	return Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}

func (poly Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(poly.Points) == 0 {
		return
	}
	first := poly.Points[0]
	minX, maxX = first.X, first.X
	minY, maxY = first.Y, first.Y
	for _, p := range poly.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}
