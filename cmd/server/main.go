package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/handler"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/server"
	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("storybook-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_dialect", string(store.DialectFromDSN(cfg.Storage.DB.DSN))).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
