package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	app "resistor-bot/internal/application"
	"resistor-bot/internal/domain/entity"
	"resistor-bot/internal/infrastructure/storage"
	"resistor-bot/internal/infrastructure/vision"
)

func TestNew(t *testing.T) {
	c := New(storage.NewMemoryUserRepository(), vision.NewDetector(vision.DefaultParams()), nil, nil)
	require.NotNil(t, c.UserService)
	require.NotNil(t, c.ResistorService)
	require.NotNil(t, c.PhotoService)

	user, err := c.UserService.SetMode(context.Background(), 1, 1, entity.ModeSMD)
	require.NoError(t, err)

	out := c.ResistorService.Handle(user.Mode, "103")
	require.Equal(t, app.OutcomeSmdDecoded, out.Kind)
	require.InDelta(t, 10000, out.Value.Ohms, 1e-9)
}
