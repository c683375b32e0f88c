//go:build ocr && gocv
// +build ocr,gocv

package ocr

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

const (
	claheClipLimit = 3.0
	claheTileGrid  = 8
)

// enhance поднимает локальный контраст (CLAHE по каналу L в пространстве Lab),
// чтобы мелкие надписи на корпусе читались лучше. При ошибке возвращает исходные байты.
func enhance(data []byte) []byte {
	out, err := enhanceCLAHE(data)
	if err != nil {
		return data
	}
	return out
}

func enhanceCLAHE(data []byte) ([]byte, error) {
	src, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	if src.Empty() {
		return nil, errors.New("empty image")
	}

	lab := gocv.NewMat()
	defer lab.Close()
	gocv.CvtColor(src, &lab, gocv.ColorBGRToLab)

	channels := gocv.Split(lab)
	defer func() {
		for _, ch := range channels {
			ch.Close()
		}
	}()

	clahe := gocv.NewCLAHEWithParams(claheClipLimit, image.Pt(claheTileGrid, claheTileGrid))
	defer clahe.Close()

	lightness := gocv.NewMat()
	defer lightness.Close()
	clahe.Apply(channels[0], &lightness)

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge([]gocv.Mat{lightness, channels[1], channels[2]}, &merged)

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(merged, &bgr, gocv.ColorLabToBGR)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, bgr)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}
