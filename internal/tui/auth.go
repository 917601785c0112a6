// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storybook/models"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

func (m authMode) String() string {
	if m == authRegister {
		return "Register"
	}
	return "Log in"
}

// AuthModel is the login / register screen. Both modes share the username
// and password inputs; ctrl+r switches between them. A successful attempt
// produces an authDoneMsg that [RootModel] turns into a saved session.
type AuthModel struct {
	state *appState

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewAuthModel(state *appState) *AuthModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AuthModel{
		state:  state,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. A failed authDoneMsg is shown as an error;
// tab / shift+tab move focus, ctrl+r toggles the mode and enter submits.
// Other keys go to the focused input.
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.reset()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.toggleMode):
			if m.mode == authLogin {
				m.mode = authRegister
			} else {
				m.mode = authLogin
			}
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			credentials := models.Credentials{
				Username: strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			if credentials.Username == "" || credentials.Password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdAuthenticate(credentials)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n\n")

	button := "[" + m.mode.String() + "]"
	if m.submitting {
		button = "[" + m.mode.String() + "...]"
	}
	b.WriteString(m.state.theme.selected().Render(button))
	b.WriteString(statusLine("", m.errMsg))

	other := authRegister
	if m.mode == authRegister {
		other = authLogin
	}
	hotKeys := "tab: next field │ enter: " + strings.ToLower(m.mode.String()) + " │ ctrl+r: " + strings.ToLower(other.String()) + " instead │ f1: about"

	return renderPage(m.state.theme.title().Render("STORYBOOK · "+strings.ToUpper(m.mode.String())), b.String(), hotKeys)
}

func (m *AuthModel) cmdAuthenticate(credentials models.Credentials) tea.Cmd {
	ctx := m.state.ctx
	serverAdapter := m.state.adapter
	mode := m.mode

	return func() tea.Msg {
		var (
			resp models.AuthResponse
			err  error
		)
		if mode == authRegister {
			resp, err = serverAdapter.Register(ctx, credentials)
		} else {
			resp, err = serverAdapter.Login(ctx, credentials)
		}
		return authDoneMsg{resp: resp, err: err}
	}
}

func (m *AuthModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errMsg = ""
}

func (m *AuthModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
