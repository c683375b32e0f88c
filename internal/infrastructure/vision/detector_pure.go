//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	xdraw "golang.org/x/image/draw"

	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/domain/port"
)

// Detector ищет цветные полосы резистора без OpenCV.
// Повторяет конвейер сборки с тегом gocv на чистом Go.
type Detector struct {
	Params
}

// NewDetector создаёт детектор с заданными параметрами.
func NewDetector(params Params) *Detector {
	return &Detector{Params: params}
}

// Detect запускает поиск полос и возвращает их слева направо.
func (d *Detector) Detect(ctx context.Context, img image.Image) ([]entity.DetectedBand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rgba, err := d.toRGBA(img)
	if err != nil {
		return nil, err
	}

	src := newPlanes(rgba)
	processed := bilateral(sharpen(src))

	hsvPix := processed.toHSV()
	foreground := adaptiveForeground(processed.gray(), processed.w, processed.h, d.BlockSize, d.ThresholdC)

	var bands []entity.DetectedBand
	for _, cr := range colorRanges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mask := make([]bool, len(hsvPix))
		for i, p := range hsvPix {
			mask[i] = foreground[i] && cr.matches(p)
		}
		mask = open3(close3(mask, processed.w, processed.h), processed.w, processed.h)

		for _, comp := range components(mask, processed.w, processed.h) {
			if !d.acceptContour(comp.area, comp.bounds) {
				continue
			}
			bands = append(bands, newBand(cr.Color, []image.Point{comp.leftmost}, comp.area, comp.bounds))
		}
	}

	if len(bands) == 0 {
		return nil, entity.ErrNoBandsDetected
	}

	entity.SortBands(bands)
	return bands, nil
}

// Highlight рисует прямоугольники вокруг полос и возвращает JPEG.
func (d *Detector) Highlight(img image.Image, bands []entity.DetectedBand) ([]byte, error) {
	rgba, err := d.toRGBA(img)
	if err != nil {
		return nil, err
	}

	green := color.RGBA{G: 255, A: 255}
	for _, b := range bands {
		drawRect(rgba, b.Bounds, green, 2)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgba, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toRGBA копирует изображение в RGBA и при необходимости уменьшает его.
func (d *Detector) toRGBA(img image.Image) (*image.RGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("empty image")
	}

	b := img.Bounds()
	w, h, scaled := scaleToFit(b.Dx(), b.Dy(), d.MaxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if scaled {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	} else {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	}
	return dst, nil
}

func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	r = r.Intersect(img.Bounds())
	for t := 0; t < thickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, r.Min.Y+t, c)
			img.SetRGBA(x, r.Max.Y-1-t, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.SetRGBA(r.Min.X+t, y, c)
			img.SetRGBA(r.Max.X-1-t, y, c)
		}
	}
}

// planes трёхканальное 8-битное изображение
type planes struct {
	w, h    int
	r, g, b []uint8
}

func newPlanes(img *image.RGBA) *planes {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	p := &planes{w: w, h: h, r: make([]uint8, w*h), g: make([]uint8, w*h), b: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := y*w + x
			p.r[i], p.g[i], p.b[i] = row[x*4], row[x*4+1], row[x*4+2]
		}
	}
	return p
}

func (p *planes) channels() [3][]uint8 {
	return [3][]uint8{p.r, p.g, p.b}
}

// reflect101 отражает индекс за границей без повтора крайнего пикселя (BORDER_REFLECT_101)
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func sharpen(src *planes) *planes {
	dst := &planes{w: src.w, h: src.h, r: make([]uint8, len(src.r)), g: make([]uint8, len(src.g)), b: make([]uint8, len(src.b))}
	in, out := src.channels(), dst.channels()
	for c := 0; c < 3; c++ {
		for y := 0; y < src.h; y++ {
			for x := 0; x < src.w; x++ {
				var sum float64
				for ky := -1; ky <= 1; ky++ {
					yy := reflect101(y+ky, src.h)
					for kx := -1; kx <= 1; kx++ {
						xx := reflect101(x+kx, src.w)
						sum += float64(sharpenKernel[ky+1][kx+1]) * float64(in[c][yy*src.w+xx])
					}
				}
				out[c][y*src.w+x] = clampByte(sum)
			}
		}
	}
	return dst
}

// bilateral сглаживает шум, не размывая границы: вес соседа падает
// с ростом разницы цвета (сумма модулей по каналам).
func bilateral(src *planes) *planes {
	radius := bilateralDiameter / 2
	spaceCoeff := -0.5 / (bilateralSigma * bilateralSigma)
	colorCoeff := -0.5 / (bilateralSigma * bilateralSigma)

	type offset struct {
		dx, dy int
		w      float64
	}
	var offsets []offset
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			r2 := float64(dx*dx + dy*dy)
			if r2 > float64(radius*radius) {
				continue
			}
			offsets = append(offsets, offset{dx, dy, math.Exp(r2 * spaceCoeff)})
		}
	}

	var colorWeight [256 * 3]float64
	for i := range colorWeight {
		colorWeight[i] = math.Exp(float64(i*i) * colorCoeff)
	}

	dst := &planes{w: src.w, h: src.h, r: make([]uint8, len(src.r)), g: make([]uint8, len(src.g)), b: make([]uint8, len(src.b))}
	for y := 0; y < src.h; y++ {
		for x := 0; x < src.w; x++ {
			i := y*src.w + x
			r0, g0, b0 := int(src.r[i]), int(src.g[i]), int(src.b[i])
			var sr, sg, sb, sw float64
			for _, o := range offsets {
				j := reflect101(y+o.dy, src.h)*src.w + reflect101(x+o.dx, src.w)
				r, g, b := int(src.r[j]), int(src.g[j]), int(src.b[j])
				w := o.w * colorWeight[absInt(r-r0)+absInt(g-g0)+absInt(b-b0)]
				sr += w * float64(r)
				sg += w * float64(g)
				sb += w * float64(b)
				sw += w
			}
			dst.r[i], dst.g[i], dst.b[i] = clampByte(sr/sw), clampByte(sg/sw), clampByte(sb/sw)
		}
	}
	return dst
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (p *planes) gray() []uint8 {
	out := make([]uint8, len(p.r))
	for i := range out {
		out[i] = clampByte(0.299*float64(p.r[i]) + 0.587*float64(p.g[i]) + 0.114*float64(p.b[i]))
	}
	return out
}

// toHSV переводит пиксели в HSV в масштабе OpenCV (H 0..180).
func (p *planes) toHSV() []hsv {
	out := make([]hsv, len(p.r))
	for i := range out {
		out[i] = rgbToHSV(p.r[i], p.g[i], p.b[i])
	}
	return out
}

func rgbToHSV(r8, g8, b8 uint8) hsv {
	r, g, b := float64(r8), float64(g8), float64(b8)
	v := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	diff := v - mn

	var s, h float64
	if v > 0 {
		s = diff * 255 / v
	}
	if diff > 0 {
		switch v {
		case r:
			h = 60 * (g - b) / diff
		case g:
			h = 120 + 60*(b-r)/diff
		default:
			h = 240 + 60*(r-g)/diff
		}
		if h < 0 {
			h += 360
		}
	}
	return hsv{H: math.Round(h / 2), S: math.Round(s), V: v}
}

// adaptiveForeground возвращает маску пикселей, которые темнее гауссова
// среднего своей окрестности больше чем на c.
func adaptiveForeground(gray []uint8, w, h int, blockSize int, c float64) []bool {
	kernel := gaussianKernel(blockSize)
	radius := blockSize / 2

	// разделимое размытие с повтором крайнего пикселя
	tmp := make([]float64, len(gray))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				xx := min(max(x+k, 0), w-1)
				sum += kernel[k+radius] * float64(gray[y*w+xx])
			}
			tmp[y*w+x] = sum
		}
	}

	delta := math.Ceil(c)
	out := make([]bool, len(gray))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				yy := min(max(y+k, 0), h-1)
				sum += kernel[k+radius] * tmp[yy*w+x]
			}
			mean := math.Round(sum)
			out[y*w+x] = float64(gray[y*w+x])-mean <= -delta
		}
	}
	return out
}

// gaussianKernel нормированное ядро с сигмой, которую OpenCV выводит из размера
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	radius := size / 2
	k := make([]float64, size)
	var sum float64
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// morph3 применяет эрозию (all) или дилатацию (any) квадратом 3×3.
// Пиксели за границей изображения не учитываются.
func morph3(src []bool, w, h int, all bool) []bool {
	out := make([]bool, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			res := all
			for dy := -1; dy <= 1 && res == all; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					if src[yy*w+xx] != all {
						res = !all
						break
					}
				}
			}
			out[y*w+x] = res
		}
	}
	return out
}

func close3(m []bool, w, h int) []bool {
	return morph3(morph3(m, w, h, false), w, h, true)
}

func open3(m []bool, w, h int) []bool {
	return morph3(morph3(m, w, h, true), w, h, false)
}

type component struct {
	area     float64 // площадь многоугольника по внешнему контуру, как у gocv.ContourArea
	bounds   image.Rectangle
	leftmost image.Point
}

// neighbours 8-соседство по часовой стрелке (ось Y вниз), начиная с востока
var neighbours = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

const west = 4

// traceOuter обходит внешнюю границу области, начиная с её верхней левой точки
// (обход границы по Suzuki, как в cv::findContours).
func traceOuter(mask []bool, w, h int, start image.Point) []image.Point {
	set := func(p image.Point) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h && mask[p.Y*w+p.X]
	}

	// первый сосед по часовой стрелке от западного; обход идёт против
	// часовой, так что эта точка станет последней в контуре
	first, firstDir := start, -1
	for k := 1; k <= 8; k++ {
		d := (west + k) % 8
		if q := start.Add(neighbours[d]); set(q) {
			first, firstDir = q, d
			break
		}
	}
	if firstDir < 0 {
		return []image.Point{start}
	}

	contour := []image.Point{start}
	prev, cur := first, start
	for {
		back := dirTo(cur, prev)
		next := cur
		for k := 1; k <= 8; k++ {
			d := (back - k + 16) % 8
			if q := cur.Add(neighbours[d]); set(q) {
				next = q
				break
			}
		}
		if next == start && cur == first {
			return contour
		}
		prev, cur = cur, next
		contour = append(contour, cur)
	}
}

// dirTo номер направления от p к соседней точке q
func dirTo(p, q image.Point) int {
	delta := q.Sub(p)
	for d, n := range neighbours {
		if n == delta {
			return d
		}
	}
	return west
}

// polygonArea площадь многоугольника по формуле шнурования
func polygonArea(points []image.Point) float64 {
	var sum int
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(float64(sum)) / 2
}

// components находит 8-связные области маски.
func components(mask []bool, w, h int) []component {
	seen := make([]bool, len(mask))
	var out []component
	var stack []int

	for start := range mask {
		if !mask[start] || seen[start] {
			continue
		}

		sx, sy := start%w, start/w
		comp := component{
			bounds:   image.Rect(sx, sy, sx+1, sy+1),
			leftmost: image.Pt(sx, sy),
		}
		seen[start] = true
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%w, i/w

			comp.bounds = comp.bounds.Union(image.Rect(x, y, x+1, y+1))
			if x < comp.leftmost.X || (x == comp.leftmost.X && y < comp.leftmost.Y) {
				comp.leftmost = image.Pt(x, y)
			}

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					j := ny*w + nx
					if mask[j] && !seen[j] {
						seen[j] = true
						stack = append(stack, j)
					}
				}
			}
		}
		// start первая точка области в порядке развёртки: самая верхняя, затем левая
		comp.area = polygonArea(traceOuter(mask, w, h, image.Pt(sx, sy)))
		out = append(out, comp)
	}
	return out
}

// Проверка реализации интерфейса
var _ port.BandDetector = (*Detector)(nil)
