//go:build ocr
// +build ocr

package ocr

import (
	"context"
	"fmt"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"resistor-bot/internal/domain/port"
)

// Engine распознаёт текст через Tesseract.
// Клиент gosseract не потокобезопасен, поэтому вызовы сериализуются.
type Engine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewEngine создаёт движок OCR для заданного языка.
func NewEngine(lang string) (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(lang); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// SMD-коды не слова, словарная коррекция только мешает
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_WORD); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := client.SetWhitelist(Whitelist); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}

	return &Engine{client: client}, nil
}

// Recognize возвращает текст, найденный на изображении, без посторонних символов.
func (e *Engine) Recognize(ctx context.Context, imageData []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.client.SetImageFromBytes(enhance(imageData)); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return CleanCode(text), nil
}

// Close освобождает ресурсы Tesseract.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.TextRecognizer = (*Engine)(nil)
