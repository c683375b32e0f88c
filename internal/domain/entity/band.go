package entity

import (
	"image"
	"sort"
	"strings"
)

// DetectedBand представляет цветную область, найденную на фото
type DetectedBand struct {
	Position int             // X самой левой точки контура
	Color    Color           // цвет полосы
	Area     float64         // площадь исходного контура
	Bounds   image.Rectangle // ограничивающий прямоугольник контура
}

// SortBands упорядочивает полосы слева направо
func SortBands(bands []DetectedBand) {
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].Position < bands[j].Position
	})
}

// Sequence возвращает цвета найденных полос в порядке чтения
func Sequence(bands []DetectedBand) BandSequence {
	seq := make(BandSequence, len(bands))
	for i, b := range bands {
		seq[i] = b.Color
	}
	return seq
}

// BandSequence упорядоченная цветовая маркировка одного резистора
type BandSequence []Color

// Names возвращает каноничные названия цветов
func (s BandSequence) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.String()
	}
	return names
}

func (s BandSequence) String() string {
	return strings.Join(s.Names(), " → ")
}
