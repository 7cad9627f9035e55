package symmetry

type Point struct {
	X float64
	Y float64
}

// A point that may not exist. The zero value is NoPoint, which is what you get
// from intersecting parallel lines, or from taking the midpoint of anything
// involving NoPoint. Check Valid before trusting the coordinates.
type MaybePoint struct {
	Point
	Valid bool
}

// An infinite line through A and B. A and B must differ.
type Line struct {
	A, B Point
}

// Points are in order, either clockwise or counterclockwise. Consecutive points
// (and the last and first points) form the edges. The polygon is assumed to be
// simple, which is not validated.
type Polygon struct {
	Name   string
	Points []Point
}

type AxisKind int

const (
	// Passes through two vertices which are opposite each other. Only possible
	// when the vertex count is even. Example: the diagonal of a rhombus.
	VertexToVertex AxisKind = iota
	// Passes through a vertex and the midpoint of the edge opposite it. Only
	// possible when the vertex count is odd. Example: any axis of an equilateral
	// triangle.
	VertexToMidpoint
	// Passes through the midpoints of two opposite edges, touching no vertex.
	// Only possible when the vertex count is even. Example: the axis of an
	// isosceles trapezoid.
	MidpointToMidpoint
)

// A candidate line of symmetry for a particular polygon.
type Axis struct {
	Kind AxisKind
	Line Line
	// Vertex the axis was generated from. For VertexToVertex and
	// VertexToMidpoint, the axis passes through this vertex. For
	// MidpointToMidpoint, the axis passes through the midpoint of the edge
	// starting at this vertex.
	Index int
}
