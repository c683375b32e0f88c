package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("BOT_LOG_LEVEL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("MAX_PHOTO_SIZE", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("DETECTOR_MAX_SIDE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.BotToken)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, int64(10*1024*1024), cfg.MaxPhotoSize)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, 1024, cfg.DetectorMaxSide)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "legacy")
	t.Setenv("REQUEST_TIMEOUT", "45")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "legacy", cfg.BotToken)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
	require.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("MAX_PHOTO_SIZE", "ten")
	_, err := Load()
	require.Error(t, err)
}

func TestValidate_MissingToken(t *testing.T) {
	cfg := &Config{MaxPhotoSize: 1, RequestTimeout: time.Second}
	require.ErrorContains(t, cfg.Validate(), "BOT_TOKEN")
}
