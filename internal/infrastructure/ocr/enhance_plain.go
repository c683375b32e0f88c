//go:build ocr && !gocv
// +build ocr,!gocv

package ocr

// enhance без OpenCV изображение не меняется
func enhance(data []byte) []byte {
	return data
}
