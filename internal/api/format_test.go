package telegram

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	app "resistor-bot/internal/application"
	"resistor-bot/internal/domain/entity"
)

func TestFormatOutcome_BandsDecoded(t *testing.T) {
	out := app.NewResistorService(nil).Handle(entity.ModeAuto, "red red brown gold")

	ru := formatOutcome(&textsRU, out)
	require.Contains(t, ru, "красный → красный → коричневый → золотой")
	require.Contains(t, ru, "220 Ом")
	require.Contains(t, ru, "±5%")

	en := formatOutcome(&textsEN, out)
	require.Contains(t, en, "red → red → brown → gold")
	require.Contains(t, en, "220 Ohm")
}

func TestFormatOutcome_SmdDecoded(t *testing.T) {
	out := app.NewResistorService(nil).Handle(entity.ModeAuto, "4R7")

	text := formatOutcome(&textsEN, out)
	require.Contains(t, text, "*4R7* (R-format)")
	require.Contains(t, text, "4.7 Ohm")
}

func TestFormatOutcome_ValueEncoded(t *testing.T) {
	out := app.NewResistorService(nil).Handle(entity.ModeAuto, "4.7k")

	text := formatOutcome(&textsEN, out)
	require.Contains(t, text, "4.70 kOhm")
	require.Contains(t, text, "4 bands: yellow → violet → red → gold")
	require.Contains(t, text, "5 bands: yellow → violet → black → brown → brown")
	require.Contains(t, text, "*472* (E24)")
}

func TestFormatOutcome_ModeFiltersSections(t *testing.T) {
	svc := app.NewResistorService(nil)

	text := formatOutcome(&textsEN, svc.Handle(entity.ModeThroughHole, "4.7k"))
	require.NotContains(t, text, "SMD")

	text = formatOutcome(&textsEN, svc.Handle(entity.ModeSMD, "4.7k"))
	require.NotContains(t, text, "bands")
}

func TestFormatError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", entity.ErrUnknownColor), textsEN.ErrUnknownColor},
		{fmt.Errorf("%w: x", entity.ErrInvalidColorForPosition), textsEN.ErrColorPosition},
		{fmt.Errorf("%w: x", entity.ErrInvalidBandCount), textsEN.ErrBandCount},
		{fmt.Errorf("%w: x", entity.ErrNotRepresentable), textsEN.ErrNotRepresentable},
		{fmt.Errorf("%w: x", entity.ErrInvalidSmdCode), textsEN.ErrSmdCode},
		{fmt.Errorf("%w: x", entity.ErrConversion), textsEN.ErrConversion},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, formatError(&textsEN, tc.err))
	}
}

func TestFormatPhoto(t *testing.T) {
	cv := &app.PhotoOutput{
		Method:   app.MethodCV,
		Value:    entity.ResistanceValue{Ohms: 1000, Tolerance: "±5%"},
		Bands:    entity.BandSequence{entity.Brown, entity.Black, entity.Red, entity.Gold},
		Detected: 4,
	}
	text := formatPhoto(&textsEN, cv)
	require.True(t, strings.HasPrefix(text, textsEN.ByBands))
	require.Contains(t, text, "1.00 kOhm")

	ocrOut := &app.PhotoOutput{
		Method:  app.MethodOCR,
		Text:    "103",
		Outcome: app.NewResistorService(nil).Handle(entity.ModeAuto, "103"),
	}
	text = formatPhoto(&textsEN, ocrOut)
	require.Contains(t, text, "*103*")
	require.Contains(t, text, "10.00 kOhm")
}

func TestFormatPhotoError(t *testing.T) {
	require.Equal(t, textsEN.PhotoNotFound,
		formatPhotoError(&textsEN, &app.UninterpretableError{Err: entity.ErrNoBandsDetected}))
	require.Equal(t, fmt.Sprintf(textsEN.PhotoBands, 2),
		formatPhotoError(&textsEN, &app.UninterpretableError{Count: 2, Err: entity.ErrInvalidBandCount}))
	require.Equal(t, textsEN.PhotoBadFormat,
		formatPhotoError(&textsEN, fmt.Errorf("%w: png", app.ErrUnsupportedImage)))
	require.Equal(t, textsEN.PhotoTooLarge, formatPhotoError(&textsEN, errPhotoTooLarge))
	require.Equal(t, textsEN.PhotoError, formatPhotoError(&textsEN, fmt.Errorf("network")))
}

func TestTextsAreComplete(t *testing.T) {
	for _, tx := range []*texts{&textsRU, &textsEN} {
		require.Len(t, tx.Colors, len(entity.Colors()))
		require.NotEmpty(t, tx.Start)
		require.NotEmpty(t, tx.Help)
	}
	require.Equal(t, &textsEN, textsFor(entity.LangEN))
	require.Equal(t, &textsRU, textsFor(entity.LangRU))
}

func TestPickPhoto(t *testing.T) {
	sizes := []tgbotapi.PhotoSize{
		{FileID: "s", FileSize: 1000},
		{FileID: "m", FileSize: 5000},
		{FileID: "l", FileSize: 20000},
	}

	p, ok := pickPhoto(sizes, 10000)
	require.True(t, ok)
	require.Equal(t, "m", p.FileID)

	p, ok = pickPhoto(sizes, 0)
	require.True(t, ok)
	require.Equal(t, "l", p.FileID)

	_, ok = pickPhoto(sizes, 10)
	require.False(t, ok)
}

func TestReadLimited(t *testing.T) {
	data, err := readLimited(bytes.NewReader([]byte("12345")), 5)
	require.NoError(t, err)
	require.Equal(t, []byte("12345"), data)

	_, err = readLimited(bytes.NewReader([]byte("123456")), 5)
	require.ErrorIs(t, err, errPhotoTooLarge)
}

func TestMenuCallbacks(t *testing.T) {
	kb := menu(entity.LangRU)
	require.Len(t, kb.InlineKeyboard, 3)

	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			require.NotNil(t, btn.CallbackData)
			data = append(data, *btn.CallbackData)
		}
	}
	require.Contains(t, data, "mode:auto")
	require.Contains(t, data, "mode:throughhole")
	require.Contains(t, data, "mode:smd")
	require.Contains(t, data, "mode:photo")
	require.Contains(t, data, "lang:en")
}
