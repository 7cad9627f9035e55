package symmetry

import "fmt"

// Every line which could be an axis of symmetry of the polygon, in the order
// the detector tries them.
//
// A polygon with mirror symmetry has the same number of vertices on either side
// of its axis, so the axis must cut the vertex sequence in half. With an odd
// vertex count, that means it passes through one vertex and the midpoint of the
// opposite edge, giving N candidates. With an even count, it either passes
// through two opposite vertices, or through the midpoints of two opposite
// edges, giving N/2 of each.
func (poly Polygon) CandidateAxes() []Axis {
	poly.mustBeValid()
	n := len(poly.Points)
	axes := make([]Axis, 0, n)
	if poly.IsOdd() {
		for i := 0; i < n; i++ {
			first, second := poly.OppositeVertices(i)
			axes = append(axes, Axis{
				Kind:  VertexToMidpoint,
				Line:  Line{poly.Points[i], poly.Points[first].Midpoint(poly.Points[second])},
				Index: i,
			})
		}
		return axes
	}

	for i := 0; i < n/2; i++ {
		opposite := poly.OppositeVertex(i)
		axes = append(axes, Axis{
			Kind:  VertexToVertex,
			Line:  Line{poly.Points[i], poly.Points[opposite]},
			Index: i,
		})
		axes = append(axes, Axis{
			Kind: MidpointToMidpoint,
			Line: Line{
				poly.Points[i].Midpoint(poly.At(i + 1)),
				poly.Points[opposite].Midpoint(poly.At(opposite + 1)),
			},
			Index: i,
		})
	}
	return axes
}

// The pairs of vertex indexes which must mirror each other across the axis for
// the polygon to be symmetric. Vertices which lie on the axis are not included,
// since they are trivially their own mirror image.
//
// One index walks forward around the polygon while the other walks backward,
// until the two flanks meet.
func (axis Axis) Pairs(n int) [][2]int {
	var pairs [][2]int
	switch axis.Kind {
	case VertexToMidpoint:
		if n%2 == 0 {
			fatalf(ErrWrongParity, "vertex to midpoint axis in a %d-gon", n)
		}
		// Start with the opposite edge and walk back towards the vertex
		first := CircularIndex(axis.Index+n/2, n)
		second := CircularIndex(axis.Index+n/2+1, n)
		for k := 0; k < n/2; k++ {
			pairs = append(pairs, [2]int{CircularIndex(first-k, n), CircularIndex(second+k, n)})
		}
	case VertexToVertex:
		if n%2 != 0 {
			fatalf(ErrWrongParity, "vertex to vertex axis in a %d-gon", n)
		}
		for k := 1; k < n/2; k++ {
			pairs = append(pairs, [2]int{CircularIndex(axis.Index+k, n), CircularIndex(axis.Index-k, n)})
		}
	case MidpointToMidpoint:
		if n%2 != 0 {
			fatalf(ErrWrongParity, "midpoint to midpoint axis in a %d-gon", n)
		}
		for k := 0; k < n/2; k++ {
			pairs = append(pairs, [2]int{CircularIndex(axis.Index-k, n), CircularIndex(axis.Index+1+k, n)})
		}
	default:
		panic("invalid axis kind")
	}
	return pairs
}

// An axis whose defining points coincide is not a line at all. This happens
// for some degenerate polygons, e.g. when a vertex sits on the midpoint of its
// opposite edge.
func (axis Axis) IsDegenerate(tol Tolerance) bool {
	return tol.PointsEqual(axis.Line.A, axis.Line.B)
}

func (axis Axis) String() string {
	return fmt.Sprintf("%s axis %s", axis.Kind, axis.Line)
}

func (kind AxisKind) String() string {
	switch kind {
	case VertexToVertex:
		return "vertex-to-vertex"
	case VertexToMidpoint:
		return "vertex-to-midpoint"
	case MidpointToMidpoint:
		return "midpoint-to-midpoint"
	}
	return fmt.Sprintf("AxisKind(%d)", int(kind))
}
