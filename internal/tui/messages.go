package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storybook/models"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

const (
	pageAuth  = "auth"
	pageShelf = "shelf"
	pageDesk  = "desk"
)

type authDoneMsg struct {
	resp models.AuthResponse
	err  error
}

type logoutMsg struct{}

type themeChangedMsg struct{}

type booksLoadedMsg struct {
	books []models.Book
	err   error
}

type bookSavedMsg struct {
	book models.Book
	err  error
}

type bookDeletedMsg struct {
	id  string
	err error
}

type stickersLoadedMsg struct {
	stickers []models.Sticker
	err      error
}

type stickerSavedMsg struct {
	sticker models.Sticker
	err     error
}

type stickerDeletedMsg struct {
	id  string
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}
