package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"resistor-bot/internal/domain/entity"
)

func TestMemoryUserRepository_CreateOnFirstContact(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.ModeAuto, user.Mode)

	user.SetMode(entity.ModeSMD)
	// без Save изменения не видны
	again, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.ModeAuto, again.Mode)

	require.NoError(t, repo.Save(ctx, user))
	again, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.ModeSMD, again.Mode)
}

func TestMemoryUserRepository_UpdateMode(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	// неизвестный пользователь игнорируется
	require.NoError(t, repo.UpdateMode(ctx, 5, entity.ModePhoto))

	_, err := repo.Get(ctx, 5, 50)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateMode(ctx, 5, entity.ModePhoto))

	user, err := repo.Get(ctx, 5, 50)
	require.NoError(t, err)
	require.Equal(t, entity.ModePhoto, user.Mode)
}

func TestMemoryUserRepository_UsersAreIsolated(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	a, _ := repo.Get(ctx, 1, 10)
	a.SetLanguage(entity.LangEN)
	require.NoError(t, repo.Save(ctx, a))

	b, err := repo.Get(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.LangRU, b.Language)
}
