package telegram

import (
	"errors"
	"fmt"
	"strings"

	app "resistor-bot/internal/application"
	"resistor-bot/internal/domain/colorcode"
	"resistor-bot/internal/domain/entity"
)

// formatOutcome превращает результат обработки текста в ответ пользователю
func formatOutcome(t *texts, out app.Outcome) string {
	switch out.Kind {
	case app.OutcomeBandsDecoded:
		return fmt.Sprintf("%s: *%s*\n%s: *%s*\n%s: %s",
			t.Marking, colorNames(t, out.Bands),
			t.Value, out.Value.Format(t.Units),
			t.Tolerance, out.Value.Tolerance)

	case app.OutcomeSmdDecoded:
		return fmt.Sprintf("%s: *%s* (%s)\n%s: *%s*",
			t.Code, out.Code.Raw, out.Code.Kind,
			t.Value, entity.FormatFine(out.Value.Ohms, t.Units))

	case app.OutcomeValueEncoded:
		var b strings.Builder
		fmt.Fprintf(&b, "%s: *%s*", t.Value, entity.FormatFine(out.Value.Ohms, t.Units))
		if out.Encodings != nil {
			fmt.Fprintf(&b, "\n%s: %s", t.FourBand, encoding(t, out.Encodings.FourBand, out.Encodings.FourBandErr))
			fmt.Fprintf(&b, "\n%s: %s", t.FiveBand, encoding(t, out.Encodings.FiveBand, out.Encodings.FiveBandErr))
		}
		if out.SmdCodes != nil || out.SmdErr != nil {
			fmt.Fprintf(&b, "\n%s: %s", t.SmdCodes, smdCodes(t, out.SmdCodes))
		}
		return b.String()

	default:
		return formatError(t, out.Err)
	}
}

func encoding(t *texts, seq entity.BandSequence, err error) string {
	if err != nil {
		return t.NoMarking
	}
	return colorNames(t, seq)
}

func smdCodes(t *texts, codes []entity.SmdCode) string {
	if len(codes) == 0 {
		return t.NoSmdCodes
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("*%s* (%s)", c.Raw, c.Kind)
	}
	return strings.Join(parts, ", ")
}

// colorNames печатает цвета на языке пользователя
func colorNames(t *texts, seq entity.BandSequence) string {
	names := make([]string, len(seq))
	for i, c := range seq {
		name, ok := t.Colors[c]
		if !ok {
			name = c.String()
		}
		names[i] = name
	}
	return strings.Join(names, " → ")
}

// formatError подбирает сообщение по типу ошибки
func formatError(t *texts, err error) string {
	switch {
	case errors.Is(err, entity.ErrUnknownColor):
		return t.ErrUnknownColor
	case errors.Is(err, entity.ErrInvalidColorForPosition):
		return t.ErrColorPosition
	case errors.Is(err, entity.ErrInvalidBandCount):
		return t.ErrBandCount
	case errors.Is(err, entity.ErrNotRepresentable):
		return t.ErrNotRepresentable
	case errors.Is(err, entity.ErrInvalidSmdCode):
		return t.ErrSmdCode
	default:
		return t.ErrConversion
	}
}

// formatPhoto формирует подпись к результату распознавания фото
func formatPhoto(t *texts, out *app.PhotoOutput) string {
	if out.Method == app.MethodOCR {
		return fmt.Sprintf("%s: *%s*\n%s", t.ByText, out.Text, formatOutcome(t, out.Outcome))
	}

	value := app.Outcome{
		Kind:  app.OutcomeBandsDecoded,
		Value: out.Value,
		Bands: out.Bands,
	}
	return fmt.Sprintf("%s (%d)\n%s", t.ByBands, out.Detected, formatOutcome(t, value))
}

// formatPhotoError объясняет, почему фото не распознано
func formatPhotoError(t *texts, err error) string {
	var uerr *app.UninterpretableError
	switch {
	case errors.As(err, &uerr) && uerr.Count > 0:
		return fmt.Sprintf(t.PhotoBands, uerr.Count)
	case errors.As(err, &uerr):
		return t.PhotoNotFound
	case errors.Is(err, app.ErrUnsupportedImage):
		return t.PhotoBadFormat
	case errors.Is(err, errPhotoTooLarge):
		return t.PhotoTooLarge
	default:
		return t.PhotoError
	}
}

// layoutName нужен для логов
func layoutName(seq entity.BandSequence) string {
	layout, err := colorcode.LayoutFor(len(seq))
	if err != nil {
		return "invalid"
	}
	return layout.String()
}
