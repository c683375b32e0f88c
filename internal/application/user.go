package app

import (
	"context"

	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/domain/port"
)

// UserService управляет сессиями пользователей: режимом и языком
type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetMode(ctx context.Context, userID, chatID int64, mode entity.UserMode) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMode(ctx, user.ID, mode); err != nil {
		return nil, err
	}

	user.SetMode(mode)
	return user, nil
}

func (s *UserService) SetLanguage(ctx context.Context, userID, chatID int64, lang entity.Language) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetLanguage(lang)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Reset возвращает пользователя в автоматический режим
func (s *UserService) Reset(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetMode(ctx, userID, chatID, entity.ModeAuto)
}
