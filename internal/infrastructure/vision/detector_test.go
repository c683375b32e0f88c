package vision

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/require"

	"resistor-bot/internal/domain/entity"
)

// stripe полоса на синтетическом резисторе
type stripe struct {
	x int
	c color.RGBA
}

// syntheticResistor рисует вертикальные полосы 8×40 на белом фоне.
func syntheticResistor(stripes ...stripe) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for _, s := range stripes {
		for y := 30; y < 70; y++ {
			for x := s.x; x < s.x+8; x++ {
				img.SetRGBA(x, y, s.c)
			}
		}
	}
	return img
}

var (
	pureRed   = color.RGBA{R: 255, A: 255}
	pureGreen = color.RGBA{G: 255, A: 255}
	pureBlue  = color.RGBA{B: 255, A: 255}
	pureBlack = color.RGBA{A: 255}
)

func TestDetector_FindsStripesLeftToRight(t *testing.T) {
	img := syntheticResistor(
		stripe{x: 100, c: pureGreen},
		stripe{x: 20, c: pureRed},
		stripe{x: 140, c: pureBlack},
		stripe{x: 60, c: pureBlue},
	)

	d := NewDetector(DefaultParams())
	bands, err := d.Detect(context.Background(), img)
	require.NoError(t, err)

	require.Equal(t, entity.BandSequence{entity.Red, entity.Blue, entity.Green, entity.Black}, entity.Sequence(bands))
	for i := 1; i < len(bands); i++ {
		require.LessOrEqual(t, bands[i-1].Position, bands[i].Position)
	}
	require.Equal(t, 20, bands[0].Position)
	require.GreaterOrEqual(t, bands[0].Area, DefaultParams().MinArea)
}

func TestDetector_Deterministic(t *testing.T) {
	img := syntheticResistor(stripe{x: 30, c: pureRed}, stripe{x: 90, c: pureBlue})
	d := NewDetector(DefaultParams())

	first, err := d.Detect(context.Background(), img)
	require.NoError(t, err)
	second, err := d.Detect(context.Background(), img)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDetector_BlankImage(t *testing.T) {
	d := NewDetector(DefaultParams())
	_, err := d.Detect(context.Background(), syntheticResistor())
	require.ErrorIs(t, err, entity.ErrNoBandsDetected)
}

func TestDetector_NilImage(t *testing.T) {
	d := NewDetector(DefaultParams())
	_, err := d.Detect(context.Background(), nil)
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrNoBandsDetected)
}

func TestDetector_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDetector(DefaultParams())
	_, err := d.Detect(ctx, syntheticResistor(stripe{x: 30, c: pureRed}))
	require.ErrorIs(t, err, context.Canceled)
}

// expiringContext отменяется после заданного числа проверок Err
type expiringContext struct {
	context.Context
	checks int
}

func (c *expiringContext) Err() error {
	if c.checks <= 0 {
		return context.Canceled
	}
	c.checks--
	return nil
}

func TestDetector_CancelledBetweenColors(t *testing.T) {
	ctx := &expiringContext{Context: context.Background(), checks: 1}

	d := NewDetector(DefaultParams())
	_, err := d.Detect(ctx, syntheticResistor(stripe{x: 30, c: pureRed}))
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, ctx.checks)
}

func TestDetector_Highlight(t *testing.T) {
	img := syntheticResistor(stripe{x: 30, c: pureRed})
	d := NewDetector(DefaultParams())

	out, err := d.Highlight(img, []entity.DetectedBand{{Position: 30, Color: entity.Red, Bounds: image.Rect(30, 30, 38, 70)}})
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}
