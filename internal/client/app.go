package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storybook/internal/adapter"
	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/session"
	"github.com/MKhiriev/go-storybook/internal/tui"
	"github.com/MKhiriev/go-storybook/models"
)

// App is the terminal client: a server adapter, the saved session and the
// UI on top of them.
type App struct {
	ui     Client
	logger *logger.Logger
}

// NewApp wires the client from cfg. A saved session is restored so a
// returning user lands on the shelf; an unreadable session file only costs
// a new login.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions := session.NewStore(cfg.SessionPath)
	sess := restoreSession(sessions, log)

	return &App{
		ui:     tui.New(ctx, serverAdapter, sessions, sess, buildInfo, log),
		logger: log,
	}, nil
}

// Run blocks until the user quits.
func (a *App) Run() error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	return a.ui.Run()
}

func restoreSession(sessions *session.Store, log *logger.Logger) session.Session {
	sess, err := sessions.Load()
	switch {
	case err == nil:
		log.Debug().Str("username", sess.User.Username).Msg("session restored")
	case errors.Is(err, session.ErrNoSession):
		log.Debug().Msg("no saved session")
	default:
		log.Warn().Err(err).Msg("error loading session, starting logged out")
		sess = session.Session{}
	}
	return sess
}
