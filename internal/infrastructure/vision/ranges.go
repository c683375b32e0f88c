package vision

import (
	"image"

	"resistor-bot/internal/domain/entity"
)

// hsv граница диапазона в пространстве OpenCV: H 0..180, S и V 0..255
type hsv struct {
	H, S, V float64
}

type hsvRange struct {
	Lower, Upper hsv
}

// colorRange набор диапазонов одного цвета. У красного их два:
// тон красного проходит через ноль.
type colorRange struct {
	Color  entity.Color
	Ranges []hsvRange
}

// colorRanges подобраны эмпирически по фотографиям резисторов.
var colorRanges = []colorRange{
	{entity.Black, []hsvRange{{hsv{0, 0, 0}, hsv{180, 255, 30}}}},
	{entity.Brown, []hsvRange{{hsv{0, 50, 10}, hsv{15, 255, 100}}}},
	{entity.Red, []hsvRange{
		{hsv{0, 100, 50}, hsv{10, 255, 255}},
		{hsv{170, 100, 50}, hsv{180, 255, 255}},
	}},
	{entity.Orange, []hsvRange{{hsv{5, 100, 100}, hsv{15, 255, 255}}}},
	{entity.Yellow, []hsvRange{{hsv{20, 100, 100}, hsv{30, 255, 255}}}},
	{entity.Green, []hsvRange{{hsv{35, 50, 50}, hsv{85, 255, 255}}}},
	{entity.Blue, []hsvRange{{hsv{100, 100, 50}, hsv{130, 255, 255}}}},
	{entity.Violet, []hsvRange{{hsv{130, 50, 50}, hsv{160, 255, 255}}}},
	{entity.Gray, []hsvRange{{hsv{0, 0, 40}, hsv{180, 50, 100}}}},
	{entity.White, []hsvRange{{hsv{0, 0, 200}, hsv{180, 30, 255}}}},
	{entity.Gold, []hsvRange{{hsv{15, 50, 50}, hsv{25, 255, 255}}}},
	{entity.Silver, []hsvRange{{hsv{0, 0, 150}, hsv{180, 30, 200}}}},
}

// contains проверяет попадание пикселя в диапазон (границы включены)
func (r hsvRange) contains(p hsv) bool {
	return p.H >= r.Lower.H && p.H <= r.Upper.H &&
		p.S >= r.Lower.S && p.S <= r.Upper.S &&
		p.V >= r.Lower.V && p.V <= r.Upper.V
}

// matches сообщает, подходит ли пиксель хотя бы под один диапазон цвета
func (c colorRange) matches(p hsv) bool {
	for _, r := range c.Ranges {
		if r.contains(p) {
			return true
		}
	}
	return false
}

// Params параметры фильтрации контуров
type Params struct {
	MinArea        float64 // минимальная площадь контура, px²
	MinAspectRatio float64 // минимальное отношение ширины к высоте
	MaxAspectRatio float64 // максимальное отношение ширины к высоте
	MaxSide        int     // большие изображения уменьшаются до этой стороны; 0 — без уменьшения
	BlockSize      int     // окно адаптивного порога, нечётное
	ThresholdC     float64 // константа адаптивного порога
}

// DefaultParams возвращает параметры, подобранные под фото с телефона.
func DefaultParams() Params {
	return Params{
		MinArea:        100,
		MinAspectRatio: 0.1,
		MaxAspectRatio: 3.0,
		MaxSide:        1024,
		BlockSize:      11,
		ThresholdC:     2,
	}
}

// acceptContour отсеивает шум (малая площадь) и вытянутые или почти
// квадратные пятна, которые не похожи на полосу.
func (p Params) acceptContour(area float64, bounds image.Rectangle) bool {
	if area < p.MinArea {
		return false
	}
	if bounds.Dy() == 0 {
		return false
	}
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	return aspect >= p.MinAspectRatio && aspect <= p.MaxAspectRatio
}

// leftmost возвращает самую левую точку контура; при равенстве первую встреченную
func leftmost(points []image.Point) image.Point {
	if len(points) == 0 {
		return image.Point{}
	}
	best := points[0]
	for _, pt := range points[1:] {
		if pt.X < best.X {
			best = pt
		}
	}
	return best
}

// newBand собирает найденную полосу из контура
func newBand(c entity.Color, points []image.Point, area float64, bounds image.Rectangle) entity.DetectedBand {
	return entity.DetectedBand{
		Position: leftmost(points).X,
		Color:    c,
		Area:     area,
		Bounds:   bounds,
	}
}

// scaleToFit возвращает размер, вписанный в maxSide с сохранением пропорций
func scaleToFit(w, h, maxSide int) (int, int, bool) {
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return w, h, false
	}
	scale := float64(maxSide) / float64(max(w, h))
	return int(float64(w) * scale), int(float64(h) * scale), true
}

// sharpenKernel ядро повышения резкости (unsharp mask)
var sharpenKernel = [3][3]float32{
	{-1, -1, -1},
	{-1, 9, -1},
	{-1, -1, -1},
}

const (
	bilateralDiameter = 9
	bilateralSigma    = 75.0
)
