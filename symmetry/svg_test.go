package symmetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <g>
    <polygon id="triangle" points="0,0 4,0 1,3" />
  </g>
  <polygon points="0 0 1 0
    1 1 0 1" />
  <rect x="0" y="0" width="1" height="1" />
</svg>`
	polygons, err := LoadSVG(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, polygons, 2)

	assert.Equal(t, "triangle", polygons[0].Name)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {1, 3}}, polygons[0].Points)

	assert.Equal(t, "", polygons[1].Name)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, polygons[1].Points)
}

func TestLoadSVG_Errors(t *testing.T) {
	cases := map[string]string{
		`<svg><polygon id="odd" points="0,0 1" /></svg>`:   "odd number of coordinates",
		`<svg><polygon id="bad" points="0,0 a,1" /></svg>`: "invalid x value \"a\"",
	}
	for doc, expected := range cases {
		_, err := LoadSVG(strings.NewReader(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), expected)
	}
}

func TestLoadFixture(t *testing.T) {
	house := LoadFixture("house")
	assert.Equal(t, "house", house.Name)
	assert.Len(t, house.Points, 5)
}
