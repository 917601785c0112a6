package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/mock"
	"github.com/MKhiriev/go-storybook/internal/session"
	"github.com/MKhiriev/go-storybook/models"
)

var (
	luna = models.UserSummary{ID: "user-luna", Username: "luna"}
	sol  = models.UserSummary{ID: "user-sol", Username: "sol"}
)

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+c":    tea.KeyCtrlC,
	"f1":        tea.KeyF1,
}

func press(k string) tea.KeyMsg {
	if k == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// newTestState returns state for sess backed by a session file in a temp dir.
func newTestState(t *testing.T, sess session.Session) (*appState, *mock.MockServerAdapter, *session.Store) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	if sess.LoggedIn() {
		serverAdapter.EXPECT().SetToken(sess.Token)
	}

	return newAppState(context.Background(), serverAdapter, store, sess, logger.Nop()), serverAdapter, store
}

func lunaSession() session.Session {
	return session.Session{Token: "token-luna", User: luna}
}

// run executes cmd and returns its message, or nil for a nil command.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func ptr[T any](v T) *T {
	return &v
}
