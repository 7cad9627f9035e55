package symmetry

import (
	"embed"
	"log"
	"math"
)

// Fixtures are SVG files in the fixtures/ directory, each holding a single
// polygon, available by name sans extension. If anything goes wrong loading
// one, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := LoadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}
	return polygons[0]
}

// Some ad hoc fixtures

func RegularPolygon(n int, radius float64) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{Points: points}
}

func Rectangle(w, h float64) Polygon {
	return NewPolygon(Point{w, h}, Point{w, -h}, Point{-w, -h}, Point{-w, h})
}

func IsoscelesTrapezoid() Polygon {
	return NewPolygon(Point{-2, -1}, Point{-1, 1}, Point{1, 1}, Point{2, -1})
}

func SymmetricPentagon() Polygon {
	return NewPolygon(Point{-1, 1}, Point{0, 2}, Point{1, 1}, Point{0.5, 0}, Point{-0.5, 0})
}

func AsymmetricHeptagon() Polygon {
	return NewPolygon(
		Point{-0.3, -4.5},
		Point{-3.7, 0.5},
		Point{-1.7, 1.5},
		Point{1.5, 1.5},
		Point{2.7, -3.4},
		Point{-3.3, -2.0},
		Point{-0.3, -2.0},
	)
}

func AsymmetricHexagon() Polygon {
	heptagon := AsymmetricHeptagon()
	return NewPolygon(heptagon.Points[:6]...)
}

// Build a symmetric polygon by mirroring a chain of points across the y axis.
// The chain should run from the axis out to the right and back.
func MirroredChain(chain ...Point) Polygon {
	points := append([]Point{}, chain...)
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].X == 0 {
			continue
		}
		points = append(points, Point{-chain[i].X, chain[i].Y})
	}
	return Polygon{Points: points}
}
