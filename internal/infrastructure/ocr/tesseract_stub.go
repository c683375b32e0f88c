//go:build !ocr
// +build !ocr

package ocr

import (
	"context"
	"errors"

	"resistor-bot/internal/domain/port"
)

// ErrDisabled сборка без тега ocr
var ErrDisabled = errors.New("ocr build tag is not enabled")

// Engine заглушка без Tesseract.
type Engine struct{}

// NewEngine возвращает ошибку, если сборка без тега ocr.
func NewEngine(lang string) (*Engine, error) {
	_ = lang
	return nil, ErrDisabled
}

// Recognize возвращает ошибку, если сборка без тега ocr.
func (e *Engine) Recognize(ctx context.Context, imageData []byte) (string, error) {
	_ = ctx
	_ = imageData
	return "", ErrDisabled
}

// Close ничего не делает.
func (e *Engine) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.TextRecognizer = (*Engine)(nil)
