package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storybook/models"
)

const (
	// moveStep is how far one arrow press moves a sticker, in percent of
	// the desk.
	moveStep     = 5.0
	rotateStep   = 15.0
	canvasWidth  = 40
	canvasHeight = 12
)

// DeskModel is the caller's private sticker desk. Positions are percentages
// of the desk in [0, 100].
type DeskModel struct {
	state *appState

	stickers []models.Sticker
	idx      int

	adding bool
	input  textinput.Model

	loading       bool
	confirmDelete bool
	status        string
	errMsg        string
}

func NewDeskModel(state *appState) *DeskModel {
	input := textinput.New()
	input.Placeholder = "write a note"
	input.CharLimit = 500
	input.Width = 40

	return &DeskModel{state: state, input: input}
}

// Init implements [tea.Model].
func (m *DeskModel) Init() tea.Cmd {
	m.loading = true
	ctx := m.state.ctx
	serverAdapter := m.state.adapter

	return func() tea.Msg {
		stickers, err := serverAdapter.ListStickers(ctx)
		return stickersLoadedMsg{stickers: stickers, err: err}
	}
}

func (m *DeskModel) selected() (models.Sticker, bool) {
	if m.idx < 0 || m.idx >= len(m.stickers) {
		return models.Sticker{}, false
	}
	return m.stickers[m.idx], true
}

// Update implements [tea.Model].
func (m *DeskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stickersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stickers = msg.stickers
		if m.idx >= len(m.stickers) {
			m.idx = max(len(m.stickers)-1, 0)
		}
		return m, nil

	case stickerSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.upsert(msg.sticker)
		return m, nil

	case stickerDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.remove(msg.id)
		m.status = "Sticker removed"
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.adding:
			return m.updateInput(msg)
		case m.confirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DeskModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		return m, m.move(0, -moveStep)
	case key.Matches(msg, keys.down):
		return m, m.move(0, moveStep)
	case key.Matches(msg, keys.left):
		return m, m.move(-moveStep, 0)
	case key.Matches(msg, keys.right):
		return m, m.move(moveStep, 0)
	case key.Matches(msg, keys.tab):
		if len(m.stickers) > 0 {
			m.idx = (m.idx + 1) % len(m.stickers)
		}
	case key.Matches(msg, keys.backtab):
		if len(m.stickers) > 0 {
			m.idx = (m.idx - 1 + len(m.stickers)) % len(m.stickers)
		}
	case key.Matches(msg, keys.rotate):
		return m, m.rotate()
	case key.Matches(msg, keys.newItem), msg.String() == "a":
		return m, m.startAdding()
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.refresh):
		return m, m.Init()
	case key.Matches(msg, keys.shelf):
		return m, func() tea.Msg { return NavigateTo{Page: pageShelf} }
	case key.Matches(msg, keys.theme):
		m.state.theme = m.state.theme.next()
		return m, func() tea.Msg { return themeChangedMsg{} }
	case key.Matches(msg, keys.logout):
		return m, func() tea.Msg { return logoutMsg{} }
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *DeskModel) startAdding() tea.Cmd {
	m.adding = true
	m.status, m.errMsg = "", ""
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

func (m *DeskModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.adding = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.errMsg = "A note needs some text"
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		return m, m.create(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DeskModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		sticker, ok := m.selected()
		if !ok {
			return m, nil
		}
		ctx := m.state.ctx
		serverAdapter := m.state.adapter
		return m, func() tea.Msg {
			return stickerDeletedMsg{id: sticker.ID, err: serverAdapter.DeleteSticker(ctx, sticker.ID)}
		}
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

// move shifts the selected sticker and sends only its new coordinates.
func (m *DeskModel) move(dx, dy float64) tea.Cmd {
	sticker, ok := m.selected()
	if !ok {
		return nil
	}

	x := clamp(sticker.X+dx, 0, 100)
	y := clamp(sticker.Y+dy, 0, 100)
	if x == sticker.X && y == sticker.Y {
		return nil
	}
	m.stickers[m.idx].X, m.stickers[m.idx].Y = x, y

	return m.send(sticker.ID, models.StickerUpdate{X: &x, Y: &y})
}

func (m *DeskModel) rotate() tea.Cmd {
	sticker, ok := m.selected()
	if !ok {
		return nil
	}

	rotation := math.Mod(sticker.Rotation+rotateStep, 360)
	m.stickers[m.idx].Rotation = rotation

	return m.send(sticker.ID, models.StickerUpdate{Rotation: &rotation})
}

func (m *DeskModel) send(id string, update models.StickerUpdate) tea.Cmd {
	ctx := m.state.ctx
	serverAdapter := m.state.adapter

	return func() tea.Msg {
		sticker, err := serverAdapter.UpdateSticker(ctx, id, update)
		return stickerSavedMsg{sticker: sticker, err: err}
	}
}

// create drops a new note in the middle of the desk.
func (m *DeskModel) create(text string) tea.Cmd {
	ctx := m.state.ctx
	serverAdapter := m.state.adapter
	x, y := 50.0, 50.0
	sticker := models.NewSticker{
		Text: text,
		X:    &x,
		Y:    &y,
		Type: models.StickerTypeNote,
	}

	return func() tea.Msg {
		created, err := serverAdapter.CreateSticker(ctx, sticker)
		return stickerSavedMsg{sticker: created, err: err}
	}
}

func (m *DeskModel) upsert(sticker models.Sticker) {
	for i := range m.stickers {
		if m.stickers[i].ID == sticker.ID {
			m.stickers[i] = sticker
			return
		}
	}
	m.stickers = append(m.stickers, sticker)
	m.idx = len(m.stickers) - 1
}

func (m *DeskModel) remove(id string) {
	for i := range m.stickers {
		if m.stickers[i].ID == id {
			m.stickers = append(m.stickers[:i], m.stickers[i+1:]...)
			break
		}
	}
	if m.idx >= len(m.stickers) {
		m.idx = max(len(m.stickers)-1, 0)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// canvas draws stickers as numbered markers on a coarse grid. The selected
// sticker is drawn as '@'.
func (m *DeskModel) canvas() string {
	grid := make([][]rune, canvasHeight)
	for row := range grid {
		grid[row] = []rune(strings.Repeat("·", canvasWidth))
	}

	for i, sticker := range m.stickers {
		col := int(sticker.X / 100 * float64(canvasWidth-1))
		row := int(sticker.Y / 100 * float64(canvasHeight-1))
		marker := rune('1' + i%9)
		if i == m.idx {
			marker = '@'
		}
		grid[row][col] = marker
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// View implements [tea.Model].
func (m *DeskModel) View() string {
	t := m.state.theme

	var b strings.Builder
	b.WriteString(t.page().Width(canvasWidth + 2).Render(m.canvas()))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.stickers) == 0:
		b.WriteString("Loading...\n")
	case len(m.stickers) == 0:
		b.WriteString("Your desk is empty. Press n to add a note.\n")
	}
	for i, sticker := range m.stickers {
		line := fmt.Sprintf("%d. %s %s  (%.0f, %.0f) %.0f°", i+1, sticker.Emoji, fitText(sticker.Text, 30), sticker.X, sticker.Y, sticker.Rotation)
		if i == m.idx {
			b.WriteString(t.selected().Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\nNew note: ")
		b.WriteString(m.input.View())
	}
	if m.confirmDelete {
		sticker, _ := m.selected()
		b.WriteString("\n" + overlayBoxStyle.BorderForeground(t.accent).Render(fmt.Sprintf("Remove %q? y/n", fitText(sticker.Text, 30))))
	}
	b.WriteString(statusLine(m.status, m.errMsg))

	hotKeys := "tab: select │ arrows: move │ r: rotate │ n: add │ d: delete │ b: shelf │ t: theme │ L: logout"
	if m.adding {
		hotKeys = "enter: add │ esc: cancel"
	}

	return renderPage(t.title().Render("STORYBOOK · DESK"), b.String(), hotKeys)
}
