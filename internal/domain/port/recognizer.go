package port

import "context"

// TextRecognizer интерфейс распознавания текста (OCR)
type TextRecognizer interface {
	// Recognize возвращает текст, найденный на изображении.
	// Пустая строка означает, что текста нет.
	Recognize(ctx context.Context, imageData []byte) (string, error)
}
