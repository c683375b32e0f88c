package app

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"resistor-bot/internal/domain/colorcode"
	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/domain/smd"
)

// OutcomeKind тип результата обработки запроса
type OutcomeKind int

const (
	OutcomeFailed       OutcomeKind = iota // запрос не распознан, причина в Err
	OutcomeBandsDecoded                    // цвета → номинал
	OutcomeSmdDecoded                      // SMD-код → номинал
	OutcomeValueEncoded                    // номинал → цвета и/или SMD-коды
)

// Outcome результат обработки текстового запроса.
// Заполнены только поля, относящиеся к Kind.
type Outcome struct {
	Kind  OutcomeKind
	Input string

	// OutcomeBandsDecoded, OutcomeSmdDecoded, OutcomeValueEncoded
	Value entity.ResistanceValue

	// OutcomeBandsDecoded
	Bands entity.BandSequence

	// OutcomeSmdDecoded
	Code entity.SmdCode

	// OutcomeValueEncoded; nil, если кодирование не запрашивалось
	Encodings *colorcode.Encodings
	SmdCodes  []entity.SmdCode
	SmdErr    error

	// OutcomeFailed
	Err error
}

func failed(input string, err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Input: input, Err: err}
}

// ResistorService определяет тип текстового запроса и передаёт его декодерам
type ResistorService struct {
	log *zap.Logger
}

func NewResistorService(log *zap.Logger) *ResistorService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResistorService{log: log}
}

// Handle обрабатывает текст с учётом режима пользователя
func (s *ResistorService) Handle(mode entity.UserMode, text string) Outcome {
	input := strings.TrimSpace(text)
	if input == "" {
		return failed(input, fmt.Errorf("%w: empty input", entity.ErrConversion))
	}

	var out Outcome
	switch mode {
	case entity.ModeThroughHole:
		if hasColorWord(input) {
			out = s.decodeColors(input)
		} else {
			out = s.encodeValue(input, true, false)
		}
	case entity.ModeSMD:
		if smd.Validate(input) {
			out = s.decodeSmd(input)
		} else {
			out = s.encodeValue(input, false, true)
		}
	default:
		switch {
		case hasColorWord(input):
			out = s.decodeColors(input)
		case smd.Validate(input):
			out = s.decodeSmd(input)
		default:
			out = s.encodeValue(input, true, true)
		}
	}

	if out.Kind == OutcomeFailed {
		s.log.Debug("request failed", zap.String("mode", string(mode)), zap.String("input", input), zap.Error(out.Err))
	}
	return out
}

func hasColorWord(text string) bool {
	for _, w := range entity.ColorWords(text) {
		if entity.IsColorName(w) {
			return true
		}
	}
	return false
}

func (s *ResistorService) decodeColors(input string) Outcome {
	seq, err := entity.ParseSequence(input)
	if err != nil {
		return failed(input, err)
	}

	value, err := colorcode.Decode(seq)
	if err != nil {
		return failed(input, err)
	}

	return Outcome{Kind: OutcomeBandsDecoded, Input: input, Value: value, Bands: seq}
}

func (s *ResistorService) decodeSmd(input string) Outcome {
	decoded, err := smd.Decode(input)
	if err != nil {
		return failed(input, err)
	}
	return Outcome{Kind: OutcomeSmdDecoded, Input: input, Value: decoded.Value, Code: decoded.Code}
}

func (s *ResistorService) encodeValue(input string, bands, codes bool) Outcome {
	ohms, err := ParseMagnitude(input)
	if err != nil {
		return failed(input, err)
	}

	out := Outcome{Kind: OutcomeValueEncoded, Input: input, Value: entity.ResistanceValue{Ohms: ohms}}
	if bands {
		enc := colorcode.EncodeBoth(ohms)
		out.Encodings = &enc
	}
	if codes {
		out.SmdCodes, out.SmdErr = smd.Encode(ohms)
	}

	bandsOK := out.Encodings != nil && out.Encodings.Any()
	codesOK := codes && out.SmdErr == nil
	if !bandsOK && !codesOK {
		return failed(input, fmt.Errorf("%w: %s", entity.ErrNotRepresentable, input))
	}
	return out
}

var magnitudePattern = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*([кkмm])?\s*(?:ом|ohms?|Ω|r)?$`)

// ParseMagnitude переводит строку вида "1.5к", "470 Ом", "2.2М" в омы.
// Префиксы: к/k — кило, м/m — мега.
func ParseMagnitude(text string) (float64, error) {
	m := magnitudePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", entity.ErrConversion, text)
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", entity.ErrConversion, text, err)
	}

	switch strings.ToLower(m[2]) {
	case "к", "k":
		value *= 1e3
	case "м", "m":
		value *= 1e6
	}
	return value, nil
}
