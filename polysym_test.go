package polysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestHasMirrorSymmetry(t *testing.T) {
	trapezoid := []Point{
		{X: -2, Y: -1},
		{X: -1, Y: 1},
		{X: 1, Y: 1},
		{X: 2, Y: -1},
	}
	ok, err := HasMirrorSymmetry(trapezoid...)
	assert.NoError(t, err)
	assert.True(t, ok)

	asymmetric := []Point{
		{X: -0.3, Y: -4.5},
		{X: -3.7, Y: 0.5},
		{X: -1.7, Y: 1.5},
		{X: 1.5, Y: 1.5},
		{X: 2.7, Y: -3.4},
		{X: -3.3, Y: -2.0},
		{X: -0.3, Y: -2.0},
	}
	ok, err = HasMirrorSymmetry(asymmetric...)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHasMirrorSymmetry_TooFewVertices(t *testing.T) {
	ok, err := HasMirrorSymmetry(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrTooFewVertices)
	assert.False(t, ok)
}

func TestFindAxis(t *testing.T) {
	axis, ok, err := FindAxis(DefaultTolerance, Point{X: 5, Y: 2}, Point{X: 5, Y: -2}, Point{X: -7, Y: -2}, Point{X: -7, Y: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, MidpointToMidpoint, axis.Kind)
	assert.Equal(t, Point{X: 5, Y: 0}, axis.Line.A)
	assert.Equal(t, Point{X: -7, Y: 0}, axis.Line.B)
}
