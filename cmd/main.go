package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"resistor-bot/config"
	telegram "resistor-bot/internal/api"
	"resistor-bot/internal/container"
	"resistor-bot/internal/domain/port"
	"resistor-bot/internal/infrastructure/ocr"
	"resistor-bot/internal/infrastructure/storage"
	"resistor-bot/internal/infrastructure/vision"
	"resistor-bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Создаём хранилище пользователей
	userRepo := newUserRepository(ctx, cfg, lg)

	// Детектор полос
	params := vision.DefaultParams()
	params.MaxSide = cfg.DetectorMaxSide
	detector := vision.NewDetector(params)

	// OCR для SMD-кодов на фото
	var recognizer port.TextRecognizer
	engine, err := ocr.NewEngine(cfg.TesseractLang)
	switch {
	case errors.Is(err, ocr.ErrDisabled):
		lg.Warn("OCR is disabled, photos are recognized by colors only")
	case err != nil:
		lg.Warn("OCR is not available", zap.Error(err))
	default:
		defer engine.Close()
		recognizer = engine
	}

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, detector, recognizer, lg)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.BotToken, appContainer, telegram.Options{
		AdminID:        cfg.AdminID,
		MaxPhotoSize:   cfg.MaxPhotoSize,
		RequestTimeout: cfg.RequestTimeout,
	}, lg)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	lg.Info("bot is running")
	if err := bot.Run(ctx); err != nil {
		lg.Error("bot stopped", zap.Error(err))
	}
}

// newUserRepository выбирает Redis, если он настроен и доступен, иначе память
func newUserRepository(ctx context.Context, cfg *config.Config, lg *zap.Logger) port.UserRepository {
	if cfg.RedisAddr == "" {
		return storage.NewMemoryUserRepository()
	}

	repo := storage.NewRedisUserRepository(storage.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.SessionTTL,
	}, lg)

	if err := repo.Ping(ctx); err != nil {
		lg.Warn("redis is not available, sessions are kept in memory",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = repo.Close()
		return storage.NewMemoryUserRepository()
	}

	lg.Info("sessions are stored in redis", zap.String("addr", cfg.RedisAddr))
	return repo
}
