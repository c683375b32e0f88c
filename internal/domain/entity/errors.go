package entity

import "errors"

var (
	// ErrNoBandsDetected изображение обработано, но цветных областей не найдено
	ErrNoBandsDetected = errors.New("no bands detected")
	// ErrInvalidBandCount меньше трёх полос
	ErrInvalidBandCount = errors.New("invalid band count")
	// ErrInvalidColorForPosition у цвета нет атрибута, нужного на этой позиции
	ErrInvalidColorForPosition = errors.New("invalid color for position")
	// ErrNotRepresentable номинал не укладывается в окно цифр и множителей
	ErrNotRepresentable = errors.New("not representable")
	// ErrInvalidSmdCode строка не подходит ни под один формат SMD
	ErrInvalidSmdCode = errors.New("invalid smd code")
	// ErrConversion строку номинала не удалось разобрать
	ErrConversion = errors.New("conversion error")
	// ErrUnknownColor название цвета отсутствует в таблице синонимов
	ErrUnknownColor = errors.New("unknown color")
)
