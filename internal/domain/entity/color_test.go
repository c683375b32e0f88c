package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorTable(t *testing.T) {
	require.Len(t, Colors(), 12)

	require.Equal(t, 0, Black.Band().Digit)
	require.Equal(t, 9, White.Band().Digit)
	require.Equal(t, 1e9, White.Band().Multiplier)
	require.Equal(t, 0.1, Gold.Band().Multiplier)
	require.Equal(t, 0.01, Silver.Band().Multiplier)
	require.Equal(t, "±5%", Gold.Band().Tolerance)
	require.Empty(t, Orange.Band().Tolerance)

	require.True(t, Red.Band().HasDigit())
	require.False(t, Gold.Band().HasDigit())
	require.False(t, Color(42).Band().HasDigit())
}

func TestParseColor_Aliases(t *testing.T) {
	cases := map[string]Color{
		"красный":    Red,
		"Violet":     Violet,
		"purple":     Violet,
		"grey":       Gray,
		" серый ":    Gray,
		"чёрный":     Black,
		"черный":     Black,
		"золотой":    Gold,
		"серебряный": Silver,
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseColor("magenta")
	require.True(t, errors.Is(err, ErrUnknownColor))
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("красный фиолетовый, желтый-золотой")
	require.NoError(t, err)
	require.Equal(t, BandSequence{Red, Violet, Yellow, Gold}, seq)
	require.Equal(t, "red → violet → yellow → gold", seq.String())

	_, err = ParseSequence("red pink")
	require.ErrorIs(t, err, ErrUnknownColor)
}

func TestColorForExponent(t *testing.T) {
	c, ok := ColorForExponent(-1)
	require.True(t, ok)
	require.Equal(t, Gold, c)

	c, ok = ColorForExponent(-2)
	require.True(t, ok)
	require.Equal(t, Silver, c)

	c, ok = ColorForExponent(3)
	require.True(t, ok)
	require.Equal(t, Orange, c)

	_, ok = ColorForExponent(10)
	require.False(t, ok)
	_, ok = ColorForExponent(-3)
	require.False(t, ok)
}
