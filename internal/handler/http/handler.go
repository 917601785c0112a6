package http

import (
	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/ratelimit"
	"github.com/MKhiriev/go-storybook/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// authLimiter throttles register and login per client IP.
	authLimiter *ratelimit.KeyedRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		cfg:         cfg,
		authLimiter: ratelimit.New(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst),
		logger:      logger,
	}
}

// Close releases the background resources of the handler.
func (h *Handler) Close() {
	h.authLimiter.Stop()
}
