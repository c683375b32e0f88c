// Package colorcode переводит цветовую маркировку выводных резисторов в номинал и обратно.
package colorcode

import (
	"fmt"
	"math"

	"resistor-bot/internal/domain/entity"
)

// Layout схема маркировки
type Layout int

const (
	FourBand Layout = 4
	FiveBand Layout = 5
)

func (l Layout) String() string {
	return fmt.Sprintf("%d-band", int(l))
}

// digits количество значащих цифр в схеме
func (l Layout) digits() int {
	return int(l) - 2
}

// LayoutFor определяет схему по числу полос: 3-4 полосы — четырёхполосная, 5 и больше — пятиполосная.
func LayoutFor(count int) (Layout, error) {
	switch {
	case count < 3:
		return 0, fmt.Errorf("%w: %d bands", entity.ErrInvalidBandCount, count)
	case count <= 4:
		return FourBand, nil
	default:
		return FiveBand, nil
	}
}

// Decode вычисляет номинал по цветовой маркировке.
// Полосы сверх позиции допуска игнорируются.
func Decode(seq entity.BandSequence) (entity.ResistanceValue, error) {
	layout, err := LayoutFor(len(seq))
	if err != nil {
		return entity.ResistanceValue{}, err
	}

	n := layout.digits()
	significant := 0
	for i := 0; i < n; i++ {
		band := seq[i].Band()
		if !band.HasDigit() {
			return entity.ResistanceValue{}, fmt.Errorf("%w: %s at digit position %d",
				entity.ErrInvalidColorForPosition, seq[i], i+1)
		}
		significant = significant*10 + band.Digit
	}

	mult := seq[n]
	if !mult.Valid() {
		return entity.ResistanceValue{}, fmt.Errorf("%w: %s at multiplier position",
			entity.ErrInvalidColorForPosition, mult)
	}

	tolerance := entity.DefaultTolerance
	if len(seq) > n+1 {
		if t := seq[n+1].Band().Tolerance; t != "" {
			tolerance = t
		}
	}

	return entity.ResistanceValue{
		Ohms:      float64(significant) * mult.Band().Multiplier,
		Tolerance: tolerance,
	}, nil
}

const (
	minExponent = -2 // серебряный множитель 0.01
	maxExponent = 9  // белый множитель 1e9
)

// toleranceColor полоса допуска, добавляемая при обратном преобразовании
func (l Layout) toleranceColor() entity.Color {
	if l == FiveBand {
		return entity.Brown
	}
	return entity.Gold
}

// Encode подбирает цветовую маркировку для номинала в омах.
func Encode(ohms float64, layout Layout) (entity.BandSequence, error) {
	if layout != FourBand && layout != FiveBand {
		return nil, fmt.Errorf("%w: %d bands", entity.ErrInvalidBandCount, int(layout))
	}
	if ohms <= 0 || math.IsNaN(ohms) || math.IsInf(ohms, 0) {
		return nil, fmt.Errorf("%w: %g Ohm at %s", entity.ErrNotRepresentable, ohms, layout)
	}

	n := layout.digits()
	lo := math.Pow10(n - 1)
	hi := math.Pow10(n)

	// Множитель ведём целым показателем, чтобы не копить ошибку округления.
	exp := 0
	scaled := ohms
	for scaled >= hi {
		exp++
		scaled = ohms / math.Pow10(exp)
		if exp > maxExponent {
			return nil, fmt.Errorf("%w: %g Ohm is too large for %s", entity.ErrNotRepresentable, ohms, layout)
		}
	}
	for scaled < lo {
		exp--
		scaled = ohms / math.Pow10(exp)
		if exp < minExponent {
			return nil, fmt.Errorf("%w: %g Ohm is too small for %s", entity.ErrNotRepresentable, ohms, layout)
		}
	}

	significant := int(math.Round(scaled))
	if float64(significant) >= hi {
		// 99.96 округляется до 100: переносим разряд в множитель
		significant /= 10
		exp++
		if exp > maxExponent {
			return nil, fmt.Errorf("%w: %g Ohm is too large for %s", entity.ErrNotRepresentable, ohms, layout)
		}
	}

	seq := make(entity.BandSequence, 0, layout)
	divisor := int(lo)
	for i := 0; i < n; i++ {
		c, _ := entity.ColorForDigit(significant / divisor % 10)
		seq = append(seq, c)
		divisor /= 10
	}

	seq = append(seq, multiplierColor(exp), layout.toleranceColor())

	return seq, nil
}

// multiplierColor возвращает цвет множителя 10^exp. Дробные множители
// берутся напрямую, остальные ищутся по ближайшему значению.
func multiplierColor(exp int) entity.Color {
	if exp < 0 {
		c, _ := entity.ColorForExponent(exp)
		return c
	}
	return nearestMultiplier(math.Pow10(exp))
}

// nearestMultiplier ищет цвет множителя с ближайшим значением.
// Золотой и серебряный в поиске не участвуют.
func nearestMultiplier(value float64) entity.Color {
	best := entity.Black
	bestDiff := math.Inf(1)
	for _, c := range entity.Colors() {
		band := c.Band()
		if !band.HasDigit() {
			continue
		}
		if d := math.Abs(band.Multiplier - value); d < bestDiff {
			best, bestDiff = c, d
		}
	}
	return best
}

// Encodings результат обратного преобразования для обеих схем.
// Для каждой схемы заполнена либо маркировка, либо ошибка.
type Encodings struct {
	FourBand    entity.BandSequence
	FourBandErr error
	FiveBand    entity.BandSequence
	FiveBandErr error
}

// Any сообщает, удалось ли подобрать хотя бы одну маркировку
func (e Encodings) Any() bool {
	return e.FourBandErr == nil || e.FiveBandErr == nil
}

// EncodeBoth подбирает четырёх- и пятиполосную маркировку независимо друг от друга.
func EncodeBoth(ohms float64) Encodings {
	var out Encodings
	out.FourBand, out.FourBandErr = Encode(ohms, FourBand)
	out.FiveBand, out.FiveBandErr = Encode(ohms, FiveBand)
	return out
}
