// Package smd расшифровывает и генерирует коды SMD-резисторов (E24, E96, R-формат).
package smd

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"resistor-bot/internal/domain/entity"
)

var (
	e24Pattern = regexp.MustCompile(`^[0-9]{3}$`)
	e96Pattern = regexp.MustCompile(`^([0-9]{2})([ZYXABCDEF])$`)
	rPattern   = regexp.MustCompile(`^([0-9]*)R([0-9]*)$`)
)

const (
	e24Tolerance = 0.10
	e96Tolerance = 0.01
	rFormatLimit = 100.0
)

// Decoded результат расшифровки кода
type Decoded struct {
	Code  entity.SmdCode
	Value entity.ResistanceValue
}

// Normalize приводит код к каноничному виду
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate сообщает, подходит ли строка под один из форматов SMD
func Validate(code string) bool {
	_, err := Decode(code)
	return err == nil
}

// Decode расшифровывает SMD-код в номинал
func Decode(code string) (Decoded, error) {
	raw := Normalize(code)

	switch {
	case e24Pattern.MatchString(raw):
		significant := int(raw[0]-'0')*10 + int(raw[1]-'0')
		ohms := float64(significant) * math.Pow10(int(raw[2]-'0'))
		return decoded(raw, entity.SmdE24, ohms), nil

	case e96Pattern.MatchString(raw):
		m := e96Pattern.FindStringSubmatch(raw)
		idx, _ := strconv.Atoi(m[1])
		if idx < 1 || idx > len(e96Values) {
			return Decoded{}, fmt.Errorf("%w: %q: unknown E96 value code %s", entity.ErrInvalidSmdCode, code, m[1])
		}
		mult, _ := e96MultiplierFor(m[2][0])
		ohms := float64(e96Values[idx-1]) / 100 * mult
		return decoded(raw, entity.SmdE96, ohms), nil

	case strings.Contains(raw, "R"):
		m := rPattern.FindStringSubmatch(raw)
		if m == nil || m[1]+m[2] == "" {
			return Decoded{}, fmt.Errorf("%w: %q", entity.ErrInvalidSmdCode, code)
		}
		intPart, fracPart := m[1], m[2]
		if intPart == "" {
			intPart = "0"
		}
		if fracPart == "" {
			fracPart = "0"
		}
		ohms, err := strconv.ParseFloat(intPart+"."+fracPart, 64)
		if err != nil {
			return Decoded{}, fmt.Errorf("%w: %q: %v", entity.ErrInvalidSmdCode, code, err)
		}
		return decoded(raw, entity.SmdRFormat, ohms), nil
	}

	return Decoded{}, fmt.Errorf("%w: %q", entity.ErrInvalidSmdCode, code)
}

func decoded(raw string, kind entity.SmdKind, ohms float64) Decoded {
	return Decoded{
		Code:  entity.SmdCode{Raw: raw, Kind: kind},
		Value: entity.ResistanceValue{Ohms: ohms},
	}
}

// Encode подбирает SMD-коды для номинала: лучший E24 (в пределах 10%),
// лучший E96 (в пределах 1%) и R-формат для номиналов меньше 100 Ом.
func Encode(ohms float64) ([]entity.SmdCode, error) {
	if ohms <= 0 || math.IsNaN(ohms) || math.IsInf(ohms, 0) {
		return nil, fmt.Errorf("%w: %g Ohm", entity.ErrNotRepresentable, ohms)
	}

	codes := make([]entity.SmdCode, 0, 3)
	if raw, ok := encodeE24(ohms); ok {
		codes = append(codes, entity.SmdCode{Raw: raw, Kind: entity.SmdE24})
	}
	if raw, ok := encodeE96(ohms); ok {
		codes = append(codes, entity.SmdCode{Raw: raw, Kind: entity.SmdE96})
	}
	if raw, ok := encodeRFormat(ohms); ok {
		codes = append(codes, entity.SmdCode{Raw: raw, Kind: entity.SmdRFormat})
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: no SMD code for %g Ohm", entity.ErrNotRepresentable, ohms)
	}
	return codes, nil
}

func relErr(candidate, ohms float64) float64 {
	return math.Abs(candidate-ohms) / ohms
}

func encodeE24(ohms float64) (string, bool) {
	best, bestErr := "", math.Inf(1)
	for _, base := range e24Series {
		for exp := -2; exp <= 6; exp++ {
			// код: две значащие цифры и показатель, третья цифра 0..9
			digit := exp - 1
			if digit < 0 || digit > 9 {
				continue
			}
			e := relErr(base*math.Pow10(exp), ohms)
			if e < e24Tolerance && e < bestErr {
				significant := int(math.Round(base * 10))
				best, bestErr = fmt.Sprintf("%02d%d", significant, digit), e
			}
		}
	}
	return best, best != ""
}

func encodeE96(ohms float64) (string, bool) {
	best, bestErr := "", math.Inf(1)
	for i, v := range e96Values {
		for _, m := range e96Multipliers {
			e := relErr(float64(v)/100*m.value, ohms)
			if e < e96Tolerance && e < bestErr {
				best, bestErr = fmt.Sprintf("%02d%c", i+1, m.letter), e
			}
		}
	}
	return best, best != ""
}

func encodeRFormat(ohms float64) (string, bool) {
	if ohms < 1 {
		milli := int(math.Round(ohms * 1000))
		if milli == 0 {
			return "", false
		}
		if milli < 1000 {
			return fmt.Sprintf("R%03d", milli), true
		}
	}
	if ohms < 10 {
		tenths := int(math.Round(ohms * 10))
		if tenths < 100 {
			return fmt.Sprintf("%dR%d", tenths/10, tenths%10), true
		}
	}
	if ohms < rFormatLimit {
		whole := int(math.Round(ohms))
		if whole < int(rFormatLimit) {
			return fmt.Sprintf("%dR", whole), true
		}
	}
	return "", false
}
