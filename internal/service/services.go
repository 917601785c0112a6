package service

import (
	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/validators"
)

type Services struct {
	AuthService     AuthService
	BookService     BookService
	StickerService  StickerService
	BackfillService BackfillService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		BookService:     NewBookService(storages.BookRepository, validator, logger),
		StickerService:  NewStickerService(storages.StickerRepository, validator, logger),
		BackfillService: NewBackfillService(storages.UserRepository, storages.BookRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
