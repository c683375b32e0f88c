package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"resistor-bot/internal/domain/colorcode"
	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/domain/port"
)

// maxDisplayBands больше пяти полос в маркировке не бывает
const maxDisplayBands = 5

// ErrUnsupportedImage фото не удалось декодировать
var ErrUnsupportedImage = errors.New("unsupported image")

// Method способ, которым распознано фото
type Method string

const (
	MethodCV  Method = "cv"
	MethodOCR Method = "ocr"
)

// PhotoOutput содержит результат распознавания фото
type PhotoOutput struct {
	Method Method

	// MethodCV
	Value       entity.ResistanceValue
	Bands       entity.BandSequence
	Detected    int    // сколько полос нашёл детектор
	Highlighted []byte // JPEG с рамками; nil, если отрисовать не удалось

	// MethodOCR
	Text    string
	Outcome Outcome
}

// UninterpretableError фото не удалось интерпретировать ни по цветам, ни по тексту
type UninterpretableError struct {
	Count int // число найденных полос
	Err   error
}

func (e *UninterpretableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("photo is not recognized (%d bands)", e.Count)
	}
	return fmt.Sprintf("photo is not recognized (%d bands): %v", e.Count, e.Err)
}

func (e *UninterpretableError) Unwrap() error {
	return e.Err
}

// PhotoService распознаёт номинал по фото: цветовые полосы, затем OCR
type PhotoService struct {
	detector   port.BandDetector
	recognizer port.TextRecognizer
	resistor   *ResistorService
	log        *zap.Logger
}

// NewPhotoService создаёт сервис распознавания. recognizer может быть nil.
func NewPhotoService(detector port.BandDetector, recognizer port.TextRecognizer, resistor *ResistorService, log *zap.Logger) *PhotoService {
	if log == nil {
		log = zap.NewNop()
	}
	if resistor == nil {
		resistor = NewResistorService(log)
	}
	return &PhotoService{
		detector:   detector,
		recognizer: recognizer,
		resistor:   resistor,
		log:        log,
	}
}

// Recognize определяет номинал резистора по фото.
func (s *PhotoService) Recognize(ctx context.Context, data []byte) (*PhotoOutput, error) {
	if s.detector == nil && s.recognizer == nil {
		return nil, errors.New("detector is not configured")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	s.log.Debug("photo decoded", zap.String("format", format), zap.Stringer("size", img.Bounds().Size()))

	var (
		detected int
		cvErr    = entity.ErrNoBandsDetected
	)
	if s.detector != nil {
		out, err := s.detectBands(ctx, img)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, entity.ErrNoBandsDetected) && !isResolveError(err) {
			return nil, err
		}
		if out != nil {
			detected = out.Detected
		}
		cvErr = err
	}

	return s.recognizeText(ctx, data, detected, cvErr)
}

// detectBands ищет полосы и переводит их в номинал. При ошибке расшифровки
// возвращает и частичный результат, чтобы сообщить число найденных полос.
func (s *PhotoService) detectBands(ctx context.Context, img image.Image) (*PhotoOutput, error) {
	bands, err := s.detector.Detect(ctx, img)
	if err != nil {
		return nil, err
	}

	seq := entity.Sequence(bands)
	if len(seq) > maxDisplayBands {
		seq = seq[:maxDisplayBands]
	}
	out := &PhotoOutput{Method: MethodCV, Bands: seq, Detected: len(bands)}

	s.log.Debug("bands detected", zap.Int("count", len(bands)), zap.Strings("bands", seq.Names()))

	value, err := colorcode.Decode(seq)
	if err != nil {
		return out, err
	}
	out.Value = value

	highlighted, err := s.detector.Highlight(img, bands)
	if err != nil {
		s.log.Warn("highlight failed", zap.Error(err))
	}
	out.Highlighted = highlighted
	return out, nil
}

func isResolveError(err error) bool {
	return errors.Is(err, entity.ErrInvalidBandCount) || errors.Is(err, entity.ErrInvalidColorForPosition)
}

// recognizeText ищет на фото SMD-код или номинал
func (s *PhotoService) recognizeText(ctx context.Context, data []byte, detected int, cvErr error) (*PhotoOutput, error) {
	if s.recognizer == nil {
		return nil, &UninterpretableError{Count: detected, Err: cvErr}
	}

	text, err := s.recognizer.Recognize(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.log.Debug("ocr failed", zap.Error(err))
		return nil, &UninterpretableError{Count: detected, Err: cvErr}
	}

	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return nil, &UninterpretableError{Count: detected, Err: cvErr}
	}

	outcome := s.resistor.Handle(entity.ModeAuto, text)
	if outcome.Kind == OutcomeFailed {
		s.log.Debug("ocr text is not a resistor value", zap.String("text", text), zap.Error(outcome.Err))
		return nil, &UninterpretableError{Count: detected, Err: cvErr}
	}

	return &PhotoOutput{Method: MethodOCR, Text: text, Outcome: outcome}, nil
}
