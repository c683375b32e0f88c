package entity

import (
	"fmt"
	"strings"
)

// Color каноничный цвет полосы резистора
type Color int

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Gray
	White
	Gold
	Silver
)

// DefaultTolerance допуск резистора без полосы допуска
const DefaultTolerance = "±20%"

// ColorBand описывает атрибуты цвета в маркировке
type ColorBand struct {
	Color      Color
	Name       string
	Digit      int     // значащая цифра; -1 и -2 зарезервированы для золотого и серебряного
	Multiplier float64 // множитель, если полоса стоит на месте множителя
	Tolerance  string  // пусто, если цвет не кодирует допуск
}

// HasDigit сообщает, может ли цвет стоять на месте значащей цифры
func (b ColorBand) HasDigit() bool {
	return b.Digit >= 0
}

var colorTable = [...]ColorBand{
	{Color: Black, Name: "black", Digit: 0, Multiplier: 1},
	{Color: Brown, Name: "brown", Digit: 1, Multiplier: 10, Tolerance: "±1%"},
	{Color: Red, Name: "red", Digit: 2, Multiplier: 100, Tolerance: "±2%"},
	{Color: Orange, Name: "orange", Digit: 3, Multiplier: 1e3},
	{Color: Yellow, Name: "yellow", Digit: 4, Multiplier: 1e4},
	{Color: Green, Name: "green", Digit: 5, Multiplier: 1e5, Tolerance: "±0.5%"},
	{Color: Blue, Name: "blue", Digit: 6, Multiplier: 1e6, Tolerance: "±0.25%"},
	{Color: Violet, Name: "violet", Digit: 7, Multiplier: 1e7, Tolerance: "±0.1%"},
	{Color: Gray, Name: "gray", Digit: 8, Multiplier: 1e8, Tolerance: "±0.05%"},
	{Color: White, Name: "white", Digit: 9, Multiplier: 1e9},
	{Color: Gold, Name: "gold", Digit: -1, Multiplier: 0.1, Tolerance: "±5%"},
	{Color: Silver, Name: "silver", Digit: -2, Multiplier: 0.01, Tolerance: "±10%"},
}

// Colors возвращает все каноничные цвета в порядке значащих цифр
func Colors() []Color {
	out := make([]Color, len(colorTable))
	for i, b := range colorTable {
		out[i] = b.Color
	}
	return out
}

// Band возвращает атрибуты цвета
func (c Color) Band() ColorBand {
	if !c.Valid() {
		return ColorBand{Color: c, Digit: -3}
	}
	return colorTable[c]
}

// Valid сообщает, входит ли цвет в таблицу
func (c Color) Valid() bool {
	return c >= Black && c <= Silver
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorTable[c].Name
}

// ColorForDigit возвращает цвет значащей цифры 0..9
func ColorForDigit(digit int) (Color, bool) {
	if digit < 0 || digit > 9 {
		return 0, false
	}
	return Color(digit), true
}

// ColorForExponent возвращает цвет множителя 10^exp, exp в диапазоне -2..9
func ColorForExponent(exp int) (Color, bool) {
	switch {
	case exp == -1:
		return Gold, true
	case exp == -2:
		return Silver, true
	default:
		return ColorForDigit(exp)
	}
}

// colorAliases сводит написания на двух языках к каноничному цвету.
var colorAliases = map[string]Color{
	"black": Black, "черный": Black, "чёрный": Black,
	"brown": Brown, "коричневый": Brown,
	"red": Red, "красный": Red,
	"orange": Orange, "оранжевый": Orange,
	"yellow": Yellow, "желтый": Yellow, "жёлтый": Yellow,
	"green": Green, "зеленый": Green, "зелёный": Green,
	"blue": Blue, "синий": Blue,
	"violet": Violet, "purple": Violet, "фиолетовый": Violet,
	"gray": Gray, "grey": Gray, "серый": Gray,
	"white": White, "белый": White,
	"gold": Gold, "золотой": Gold, "золотистый": Gold,
	"silver": Silver, "серебряный": Silver, "серебристый": Silver,
}

// ParseColor нормализует название цвета (русское или английское)
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colorAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// IsColorName сообщает, является ли слово известным названием цвета
func IsColorName(name string) bool {
	_, ok := colorAliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ColorWords делит строку на слова по пробелам, запятым, дефисам и стрелкам
func ColorWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', ',', ';', '-', '\t', '\n', '>', '→':
			return true
		}
		return false
	})
}

// ParseSequence разбирает цвета, разделённые пробелами, запятыми или дефисами
func ParseSequence(text string) (BandSequence, error) {
	words := ColorWords(text)
	seq := make(BandSequence, 0, len(words))
	for _, w := range words {
		c, err := ParseColor(w)
		if err != nil {
			return nil, err
		}
		seq = append(seq, c)
	}
	return seq, nil
}
