package symmetry

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read polygons in the plain text format. Input should be newline separated
// points in the form "x y" (a comma also works as a separator), with each
// polygon separated by an extra newline. Lines starting with # are ignored.
func ReadPolygons(in io.Reader) ([]Polygon, error) {
	polygons := []Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, Polygon{Points: points})
				points = []Point{}
			}
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons, nil
}

func ParsePoint(s string) (Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return Point{}, errors.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}
