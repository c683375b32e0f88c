package container

import (
	"go.uber.org/zap"

	app "resistor-bot/internal/application"
	"resistor-bot/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	ResistorService *app.ResistorService
	PhotoService    *app.PhotoService
}

func New(userRepo port.UserRepository, detector port.BandDetector, recognizer port.TextRecognizer, log *zap.Logger) *Container {
	userService := app.NewUserService(userRepo)
	resistorService := app.NewResistorService(log)
	photoService := app.NewPhotoService(detector, recognizer, resistorService, log)

	return &Container{
		UserService:     userService,
		ResistorService: resistorService,
		PhotoService:    photoService,
	}
}
