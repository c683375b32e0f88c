package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/infrastructure/storage"
)

func TestUserService_SetModeAndReset(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetMode(ctx, 1, 10, entity.ModeThroughHole)
	require.NoError(t, err)
	require.Equal(t, entity.ModeThroughHole, user.Mode)

	user, err = svc.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.ModeThroughHole, user.Mode)

	user, err = svc.Reset(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.ModeAuto, user.Mode)
}

func TestUserService_SetLanguage(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetLanguage(ctx, 2, 20, entity.LangEN)
	require.NoError(t, err)
	require.Equal(t, entity.LangEN, user.Language)
	require.Equal(t, entity.ModeAuto, user.Mode)
}
