package tui

import (
	"context"

	"github.com/MKhiriev/go-storybook/internal/adapter"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/session"
)

// appState is shared by every page of one program run.
type appState struct {
	ctx      context.Context
	adapter  adapter.ServerAdapter
	sessions *session.Store
	session  session.Session
	theme    theme
	logger   *logger.Logger
}

func newAppState(ctx context.Context, serverAdapter adapter.ServerAdapter, sessions *session.Store, sess session.Session, logger *logger.Logger) *appState {
	if sess.LoggedIn() {
		serverAdapter.SetToken(sess.Token)
	}

	return &appState{
		ctx:      ctx,
		adapter:  serverAdapter,
		sessions: sessions,
		session:  sess,
		theme:    themeByName(sess.Theme),
		logger:   logger,
	}
}

// owns reports whether the logged-in user may edit a record owned by
// ownerID. Orphan records belong to nobody.
func (s *appState) owns(ownerID string) bool {
	return ownerID != "" && ownerID == s.session.User.ID
}

// persist writes the session; a failure is logged, the UI carries on.
func (s *appState) persist() {
	s.session.Theme = s.theme.name
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Save(s.session); err != nil {
		s.logger.Err(err).Msg("error saving session")
	}
}
