package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storybook/internal/session"
	"github.com/MKhiriev/go-storybook/models"
)

// RootModel routes messages to the active page and owns the session
// lifecycle: it saves the session after login, clears it on logout and
// persists theme changes.
type RootModel struct {
	state     *appState
	buildInfo models.AppBuildInfo

	pages   map[string]tea.Model
	current string

	showAbout     bool
	serverVersion string
}

func NewRootModel(state *appState, buildInfo models.AppBuildInfo) *RootModel {
	start := pageAuth
	if state.session.LoggedIn() {
		start = pageShelf
	}

	return &RootModel{
		state:     state,
		buildInfo: buildInfo,
		pages: map[string]tea.Model{
			pageAuth:  NewAuthModel(state),
			pageShelf: NewShelfModel(state),
			pageDesk:  NewDeskModel(state),
		},
		current: start,
	}
}

// Init implements [tea.Model].
func (m *RootModel) Init() tea.Cmd {
	return m.pages[m.current].Init()
}

// Update implements [tea.Model].
func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showAbout {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showAbout = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.version) {
			m.showAbout = true
			return m, m.cmdServerVersion()
		}

	case serverVersionMsg:
		if msg.err != nil {
			m.state.logger.Err(msg.err).Msg("error fetching server version")
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case NavigateTo:
		return m.navigate(msg)

	case authDoneMsg:
		next, cmd := m.pages[pageAuth].Update(msg)
		m.pages[pageAuth] = next
		if msg.err != nil {
			return m, cmd
		}

		m.state.session = session.Session{Token: msg.resp.Token, User: msg.resp.User}
		m.state.adapter.SetToken(msg.resp.Token)
		m.state.persist()

		m.pages[pageShelf] = NewShelfModel(m.state)
		m.pages[pageDesk] = NewDeskModel(m.state)
		return m.navigate(NavigateTo{Page: pageShelf})

	case logoutMsg:
		m.state.adapter.SetToken("")
		m.state.session = session.Session{Theme: m.state.theme.name}
		if m.state.sessions != nil {
			if err := m.state.sessions.Clear(); err != nil {
				m.state.logger.Err(err).Msg("error clearing session")
			}
		}
		return m.navigate(NavigateTo{Page: pageAuth})

	case themeChangedMsg:
		m.state.persist()
		return m, nil
	}

	next, cmd := m.pages[m.current].Update(msg)
	m.pages[m.current] = next
	return m, cmd
}

func (m *RootModel) navigate(msg NavigateTo) (tea.Model, tea.Cmd) {
	page, ok := m.pages[msg.Page]
	if !ok {
		m.state.logger.Warn().Str("page", msg.Page).Msg("unknown page")
		return m, nil
	}
	m.current = msg.Page

	if msg.Payload != nil {
		next, cmd := page.Update(msg.Payload)
		m.pages[msg.Page] = next
		return m, cmd
	}
	return m, page.Init()
}

func (m *RootModel) cmdServerVersion() tea.Cmd {
	ctx := m.state.ctx
	serverAdapter := m.state.adapter

	return func() tea.Msg {
		version, err := serverAdapter.GetServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

// View implements [tea.Model].
func (m *RootModel) View() string {
	if m.showAbout {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}
	return m.pages[m.current].View()
}
