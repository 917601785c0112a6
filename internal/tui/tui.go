package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storybook/internal/adapter"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/session"
	"github.com/MKhiriev/go-storybook/models"
)

// TUI is the terminal storybook client.
type TUI struct {
	root *RootModel
}

// New builds the UI. sess is the session restored at start-up; an empty
// session opens the login screen.
func New(ctx context.Context, serverAdapter adapter.ServerAdapter, sessions *session.Store, sess session.Session, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	state := newAppState(ctx, serverAdapter, sessions, sess, logger)
	return &TUI{root: NewRootModel(state, buildInfo)}
}

// Run blocks until the user quits.
func (t *TUI) Run() error {
	if _, err := tea.NewProgram(t.root, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
