//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/domain/port"
)

// Detector ищет цветные полосы резистора средствами OpenCV.
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

	mat, err := d.toMat(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	processed := preprocess(mat)
	defer processed.Close()

	hsvMat := gocv.NewMat()
	defer hsvMat.Close()
	gocv.CvtColor(processed, &hsvMat, gocv.ColorBGRToHSV)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(processed, &gray, gocv.ColorBGRToGray)

	// Маска объектов: адаптивный порог, инвертированный так, чтобы
	// тёмные относительно окрестности области стали передним планом.
	foreground := gocv.NewMat()
	defer foreground.Close()
	gocv.AdaptiveThreshold(gray, &foreground, 255, gocv.AdaptiveThresholdGaussian,
		gocv.ThresholdBinary, d.BlockSize, float32(d.ThresholdC))
	gocv.BitwiseNot(foreground, &foreground)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	var bands []entity.DetectedBand
	for _, cr := range colorRanges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found := d.detectColor(hsvMat, foreground, kernel, cr)
		bands = append(bands, found...)
	}

	if len(bands) == 0 {
		return nil, entity.ErrNoBandsDetected
	}

	entity.SortBands(bands)
	return bands, nil
}

// detectColor строит маску одного цвета и возвращает подходящие контуры.
func (d *Detector) detectColor(hsvMat, foreground, kernel gocv.Mat, cr colorRange) []entity.DetectedBand {
	mask := gocv.NewMat()
	defer mask.Close()

	for i, r := range cr.Ranges {
		part := gocv.NewMat()
		gocv.InRangeWithScalar(hsvMat,
			gocv.NewScalar(r.Lower.H, r.Lower.S, r.Lower.V, 0),
			gocv.NewScalar(r.Upper.H, r.Upper.S, r.Upper.V, 0),
			&part)
		if i == 0 {
			part.CopyTo(&mask)
		} else {
			gocv.BitwiseOr(mask, part, &mask)
		}
		part.Close()
	}

	// Отсекаем фон, который случайно попал в диапазон цвета (например, кожу как "коричневый").
	gocv.BitwiseAnd(mask, foreground, &mask)

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyEx(mask, &closed, gocv.MorphClose, kernel)

	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyEx(closed, &opened, gocv.MorphOpen, kernel)

	contours := gocv.FindContours(opened, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	bands := make([]entity.DetectedBand, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		rect := gocv.BoundingRect(c)
		if !d.acceptContour(area, rect) {
			continue
		}
		bands = append(bands, newBand(cr.Color, c.ToPoints(), area, rect))
	}
	return bands
}

// preprocess повышает резкость и сглаживает шум, сохраняя границы полос.
func preprocess(src gocv.Mat) gocv.Mat {
	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			kernel.SetFloatAt(row, col, sharpenKernel[row][col])
		}
	}

	sharp := gocv.NewMat()
	defer sharp.Close()
	gocv.Filter2D(src, &sharp, -1, kernel, image.Pt(-1, -1), 0, gocv.BorderDefault)

	smooth := gocv.NewMat()
	gocv.BilateralFilter(sharp, &smooth, bilateralDiameter, bilateralSigma, bilateralSigma)
	return smooth
}

// toMat переводит изображение в BGR Mat и при необходимости уменьшает его.
func (d *Detector) toMat(img image.Image) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), errors.New("empty image")
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert image: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), errors.New("empty image")
	}

	if w, h, ok := scaleToFit(mat.Cols(), mat.Rows(), d.MaxSide); ok {
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}
	return mat, nil
}

// Highlight рисует прямоугольники вокруг полос и возвращает JPEG.
func (d *Detector) Highlight(img image.Image, bands []entity.DetectedBand) ([]byte, error) {
	mat, err := d.toMat(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	green := color.RGBA{G: 255, A: 255}
	for _, b := range bands {
		gocv.Rectangle(&mat, b.Bounds, green, 2)
	}

	out, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.BandDetector = (*Detector)(nil)
