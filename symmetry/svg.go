package symmetry

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Load every <polygon> element from an SVG document. This is not a full SVG
// reader: transforms, paths and other shapes are ignored. Each polygon is named
// by its id attribute, if it has one.
//
// Note that SVG's y axis points down, which mirrors every shape. That doesn't
// change whether a shape is symmetric, so no correction is made.
func LoadSVG(r io.Reader) ([]Polygon, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var polygons []Polygon
	for _, polygonEl := range rootEl.FindAll("polygon") {
		points, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %q", polygonEl.Attributes["id"])
		}
		polygons = append(polygons, Polygon{Name: polygonEl.Attributes["id"], Points: points})
	}
	return polygons, nil
}

// The points attribute is a flat list of coordinates separated by commas and/or
// whitespace.
func parseSVGPoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
