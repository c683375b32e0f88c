package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Units названия единиц сопротивления для вывода
type Units struct {
	Ohm     string
	KiloOhm string
	MegaOhm string
}

var (
	UnitsRU = Units{Ohm: "Ом", KiloOhm: "кОм", MegaOhm: "МОм"}
	UnitsEN = Units{Ohm: "Ohm", KiloOhm: "kOhm", MegaOhm: "MOhm"}
)

// ResistanceValue номинал в омах с необязательным допуском
type ResistanceValue struct {
	Ohms      float64
	Tolerance string
}

// Format печатает номинал: МОм и кОм с двумя знаками, омы округляются до целого
func (r ResistanceValue) Format(u Units) string {
	return FormatOhms(r.Ohms, u)
}

func (r ResistanceValue) String() string {
	return r.Format(UnitsEN)
}

// FormatOhms форматирует номинал в омах
func FormatOhms(ohms float64, u Units) string {
	switch {
	case ohms >= 1e6:
		return fmt.Sprintf("%.2f %s", ohms/1e6, u.MegaOhm)
	case ohms >= 1e3:
		return fmt.Sprintf("%.2f %s", ohms/1e3, u.KiloOhm)
	default:
		return fmt.Sprintf("%.0f %s", math.Round(ohms), u.Ohm)
	}
}

// FormatFine форматирует номинал с дробной частью для значений меньше кОм.
// Используется для SMD-кодов, где встречаются доли ома.
func FormatFine(ohms float64, u Units) string {
	switch {
	case ohms >= 1e6:
		return fmt.Sprintf("%.2f %s", ohms/1e6, u.MegaOhm)
	case ohms >= 1e3:
		return fmt.Sprintf("%.2f %s", ohms/1e3, u.KiloOhm)
	case ohms < 1:
		return fmt.Sprintf("%.3f %s", ohms, u.Ohm)
	default:
		s := strconv.FormatFloat(ohms, 'f', 1, 64)
		s = strings.TrimSuffix(strings.TrimSuffix(s, "0"), ".")
		return s + " " + u.Ohm
	}
}
