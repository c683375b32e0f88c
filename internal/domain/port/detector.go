package port

import (
	"context"
	"image"

	"resistor-bot/internal/domain/entity"
)

// BandDetector интерфейс детектора цветных полос
type BandDetector interface {
	// Detect ищет цветные полосы и возвращает их слева направо.
	// Если полос нет, возвращает entity.ErrNoBandsDetected.
	Detect(ctx context.Context, img image.Image) ([]entity.DetectedBand, error)

	// Highlight рисует найденные полосы поверх изображения и возвращает JPEG
	Highlight(img image.Image, bands []entity.DetectedBand) ([]byte, error)
}
