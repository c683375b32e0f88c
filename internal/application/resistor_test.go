package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resistor-bot/internal/domain/entity"
)

func TestParseMagnitude(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"470", 470},
		{"470 Ом", 470},
		{"1.5к", 1500},
		{"1,5к", 1500},
		{"10k", 10000},
		{"10 kOhm", 10000},
		{"2.2М", 2.2e6},
		{"2.2m", 2.2e6},
		{"0.47 ohm", 0.47},
		{"4,7", 4.7},
		{"100Ω", 100},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMagnitude(tc.in)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestParseMagnitude_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "k10", "10 kg"} {
		_, err := ParseMagnitude(in)
		require.ErrorIs(t, err, entity.ErrConversion, in)
	}
}

func TestHandle_AutoColors(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeAuto, "красный красный коричневый золотой")
	require.Equal(t, OutcomeBandsDecoded, out.Kind)
	require.NoError(t, out.Err)
	require.InDelta(t, 220, out.Value.Ohms, 1e-9)
	require.Equal(t, "±5%", out.Value.Tolerance)
	require.Equal(t, entity.BandSequence{entity.Red, entity.Red, entity.Brown, entity.Gold}, out.Bands)
}

func TestHandle_AutoUnknownColor(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeAuto, "red magenta brown")
	require.Equal(t, OutcomeFailed, out.Kind)
	require.ErrorIs(t, out.Err, entity.ErrUnknownColor)
}

func TestHandle_AutoInvalidColorPosition(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeAuto, "gold red brown")
	require.Equal(t, OutcomeFailed, out.Kind)
	require.ErrorIs(t, out.Err, entity.ErrInvalidColorForPosition)
}

func TestHandle_AutoSmd(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeAuto, "472")
	require.Equal(t, OutcomeSmdDecoded, out.Kind)
	require.InDelta(t, 4700, out.Value.Ohms, 1e-9)
	require.Equal(t, entity.SmdE24, out.Code.Kind)

	out = svc.Handle(entity.ModeAuto, "4r7")
	require.Equal(t, OutcomeSmdDecoded, out.Kind)
	require.InDelta(t, 4.7, out.Value.Ohms, 1e-9)
	require.Equal(t, entity.SmdCode{Raw: "4R7", Kind: entity.SmdRFormat}, out.Code)
}

func TestHandle_AutoValue(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeAuto, "4.7k")
	require.Equal(t, OutcomeValueEncoded, out.Kind)
	require.InDelta(t, 4700, out.Value.Ohms, 1e-9)

	require.NotNil(t, out.Encodings)
	require.NoError(t, out.Encodings.FourBandErr)
	require.Equal(t, entity.BandSequence{entity.Yellow, entity.Violet, entity.Red, entity.Gold}, out.Encodings.FourBand)
	require.NoError(t, out.Encodings.FiveBandErr)
	require.Equal(t, entity.BandSequence{entity.Yellow, entity.Violet, entity.Black, entity.Brown, entity.Brown}, out.Encodings.FiveBand)

	require.NoError(t, out.SmdErr)
	require.Equal(t, []entity.SmdCode{{Raw: "472", Kind: entity.SmdE24}}, out.SmdCodes)
}

func TestHandle_ThroughHoleOnlyBands(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeThroughHole, "472")
	require.Equal(t, OutcomeValueEncoded, out.Kind)
	require.NotNil(t, out.Encodings)
	require.Nil(t, out.SmdCodes)
	require.NoError(t, out.SmdErr)
	require.Equal(t, entity.BandSequence{entity.Yellow, entity.Violet, entity.Brown, entity.Gold}, out.Encodings.FourBand)

	out = svc.Handle(entity.ModeThroughHole, "brown black red")
	require.Equal(t, OutcomeBandsDecoded, out.Kind)
	require.InDelta(t, 1000, out.Value.Ohms, 1e-9)
	require.Equal(t, entity.DefaultTolerance, out.Value.Tolerance)
}

func TestHandle_SmdOnlyCodes(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeSMD, "1k")
	require.Equal(t, OutcomeValueEncoded, out.Kind)
	require.Nil(t, out.Encodings)
	require.NotEmpty(t, out.SmdCodes)
	require.Equal(t, entity.SmdCode{Raw: "102", Kind: entity.SmdE24}, out.SmdCodes[0])

	out = svc.Handle(entity.ModeSMD, "01c")
	require.Equal(t, OutcomeSmdDecoded, out.Kind)
	require.Equal(t, entity.SmdE96, out.Code.Kind)

	out = svc.Handle(entity.ModeSMD, "red red brown")
	require.Equal(t, OutcomeFailed, out.Kind)
	require.ErrorIs(t, out.Err, entity.ErrConversion)
}

func TestHandle_Failures(t *testing.T) {
	svc := NewResistorService(nil)

	out := svc.Handle(entity.ModeAuto, "   ")
	require.Equal(t, OutcomeFailed, out.Kind)
	require.ErrorIs(t, out.Err, entity.ErrConversion)

	out = svc.Handle(entity.ModeAuto, "hello world")
	require.Equal(t, OutcomeFailed, out.Kind)
	require.ErrorIs(t, out.Err, entity.ErrConversion)

	out = svc.Handle(entity.ModeAuto, "0")
	require.Equal(t, OutcomeFailed, out.Kind)
	require.ErrorIs(t, out.Err, entity.ErrNotRepresentable)
}
