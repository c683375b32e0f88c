package port

import (
	"context"

	"resistor-bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища сессий пользователей
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние пользователя
	Save(ctx context.Context, user *entity.User) error

	// UpdateMode обновляет режим пользователя
	UpdateMode(ctx context.Context, userID int64, mode entity.UserMode) error
}
