package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"resistor-bot/internal/domain/entity"
)

func rangeFor(c entity.Color) colorRange {
	for _, cr := range colorRanges {
		if cr.Color == c {
			return cr
		}
	}
	panic("no range for " + c.String())
}

func TestColorRanges_CoverAllColors(t *testing.T) {
	require.Len(t, colorRanges, len(entity.Colors()))
	for _, c := range entity.Colors() {
		require.NotEmpty(t, rangeFor(c).Ranges, c.String())
	}
}

func TestColorRanges_RedWrapsAroundZero(t *testing.T) {
	red := rangeFor(entity.Red)
	require.Len(t, red.Ranges, 2)
	require.True(t, red.matches(hsv{H: 3, S: 200, V: 200}))
	require.True(t, red.matches(hsv{H: 175, S: 200, V: 200}))
	require.False(t, red.matches(hsv{H: 90, S: 200, V: 200}))
}

func TestColorRanges_BoundsInclusive(t *testing.T) {
	yellow := rangeFor(entity.Yellow)
	require.True(t, yellow.matches(hsv{H: 20, S: 100, V: 100}))
	require.True(t, yellow.matches(hsv{H: 30, S: 255, V: 255}))
	require.False(t, yellow.matches(hsv{H: 31, S: 255, V: 255}))
}

func TestParams_AcceptContour(t *testing.T) {
	p := DefaultParams()

	require.True(t, p.acceptContour(320, image.Rect(0, 0, 8, 40)))
	// шум
	require.False(t, p.acceptContour(50, image.Rect(0, 0, 8, 40)))
	// слишком вытянутая по горизонтали
	require.False(t, p.acceptContour(400, image.Rect(0, 0, 80, 5)))
	// слишком узкая
	require.False(t, p.acceptContour(400, image.Rect(0, 0, 2, 200)))
	require.False(t, p.acceptContour(400, image.Rect(0, 0, 10, 0)))
	// границы включены
	require.True(t, p.acceptContour(300, image.Rect(0, 0, 30, 10)))
}

func TestLeftmost(t *testing.T) {
	pts := []image.Point{{5, 1}, {3, 4}, {3, 9}, {7, 0}}
	require.Equal(t, image.Pt(3, 4), leftmost(pts))
	require.Equal(t, image.Point{}, leftmost(nil))
}

func TestScaleToFit(t *testing.T) {
	w, h, ok := scaleToFit(2048, 1024, 1024)
	require.True(t, ok)
	require.Equal(t, 1024, w)
	require.Equal(t, 512, h)

	w, h, ok = scaleToFit(800, 600, 1024)
	require.False(t, ok)
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)

	_, _, ok = scaleToFit(5000, 5000, 0)
	require.False(t, ok)
}
