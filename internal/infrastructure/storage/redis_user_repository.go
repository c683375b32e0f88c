package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/domain/port"
)

const userKeyPrefix = "resistor-bot:user:"

// RedisUserRepository хранит сессии пользователей в Redis, чтобы режим переживал перезапуск бота
type RedisUserRepository struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// RedisOptions параметры подключения
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisUserRepository создаёт хранилище поверх Redis
func NewRedisUserRepository(opts RedisOptions, log *zap.Logger) *RedisUserRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	return &RedisUserRepository{
		client: client,
		ttl:    opts.TTL,
		log:    log,
	}
}

func userKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}

// Ping проверяет соединение
func (r *RedisUserRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get возвращает сессию пользователя, создаёт новую при первом обращении.
// Каждое чтение продлевает TTL, так что активная сессия не истекает.
func (r *RedisUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	data, err := r.client.GetEx(ctx, userKey(userID), r.ttl).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("get user %d: %w", userID, err)
		}
		user := entity.NewUser(userID, chatID)
		if err := r.Save(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		r.log.Warn("corrupted user session, resetting",
			zap.Int64("user_id", userID), zap.Error(err))
		fresh := entity.NewUser(userID, chatID)
		if err := r.Save(ctx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	return &user, nil
}

// Save сохраняет состояние пользователя
func (r *RedisUserRepository) Save(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user %d: %w", user.ID, err)
	}

	if err := r.client.Set(ctx, userKey(user.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return nil
}

// UpdateMode обновляет режим пользователя
func (r *RedisUserRepository) UpdateMode(ctx context.Context, userID int64, mode entity.UserMode) error {
	data, err := r.client.Get(ctx, userKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get user %d: %w", userID, err)
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("unmarshal user %d: %w", userID, err)
	}
	user.SetMode(mode)

	return r.Save(ctx, &user)
}

// Close закрывает соединение
func (r *RedisUserRepository) Close() error {
	return r.client.Close()
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*RedisUserRepository)(nil)
