package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-storybook/models"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// shelfCategories is the category filter cycle, "All" first.
var shelfCategories = append([]models.Category{models.CategoryAll}, models.Categories...)

// ShelfModel lists books on the left and shows the selected one in a
// [bookPanel] on the right.
type ShelfModel struct {
	state *appState

	books []models.Book
	idx   int

	mine      bool
	category  int
	search    textinput.Model
	searching bool

	panel bookPanel

	loading       bool
	confirmDelete bool
	status        string
	errMsg        string
}

func NewShelfModel(state *appState) *ShelfModel {
	search := textinput.New()
	search.Placeholder = "author"
	search.CharLimit = 100
	search.Width = 30

	return &ShelfModel{
		state:  state,
		search: search,
		panel:  emptyPanel(),
	}
}

// Init implements [tea.Model].
func (m *ShelfModel) Init() tea.Cmd {
	return m.reload()
}

func (m *ShelfModel) filter() models.BookFilter {
	filter := models.BookFilter{
		Category: shelfCategories[m.category],
		Author:   strings.TrimSpace(m.search.Value()),
	}
	if m.mine {
		filter.OwnerID = m.state.session.User.ID
	}
	return filter
}

func (m *ShelfModel) reload() tea.Cmd {
	m.loading = true
	ctx := m.state.ctx
	serverAdapter := m.state.adapter
	filter := m.filter()

	return func() tea.Msg {
		books, err := serverAdapter.ListBooks(ctx, filter)
		return booksLoadedMsg{books: books, err: err}
	}
}

func (m *ShelfModel) selected() (models.Book, bool) {
	if m.idx < 0 || m.idx >= len(m.books) {
		return models.Book{}, false
	}
	return m.books[m.idx], true
}

// Update implements [tea.Model].
func (m *ShelfModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case booksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.books = msg.books
		if m.idx >= len(m.books) {
			m.idx = max(len(m.books)-1, 0)
		}
		m.refreshPanel()
		return m, nil

	case bookSavedMsg:
		if msg.err != nil {
			m.setFormError(humanizeError(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("Saved %q", msg.book.Title)
		m.errMsg = ""
		m.panel = viewingPanel(msg.book)
		m.upsert(msg.book)
		return m, nil

	case bookDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.remove(msg.id)
		m.status = "Book deleted"
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.panel.editing():
			return m.updateForm(msg)
		case m.searching:
			return m.updateSearch(msg)
		case m.confirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	if m.panel.editing() {
		var cmd tea.Cmd
		m.panel.form, cmd = m.panel.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ShelfModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	book, hasBook := m.selected()

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.refreshPanel()
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.books)-1 {
			m.idx++
			m.refreshPanel()
		}
	case key.Matches(msg, keys.enter):
		if hasBook {
			m.panel = viewingPanel(book)
		}
	case key.Matches(msg, keys.prevPage):
		m.panel.prevPage()
	case key.Matches(msg, keys.nextPage):
		m.panel.nextPage()
	case key.Matches(msg, keys.copy):
		text, ok := m.panel.currentPage()
		if !ok {
			return m, nil
		}
		if err := writeClipboard(text); err != nil {
			m.errMsg = "Clipboard unavailable"
			return m, nil
		}
		m.status = "Page copied"
	case key.Matches(msg, keys.newItem):
		m.status, m.errMsg = "", ""
		m.panel = creatingPanel()
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if !hasBook || !m.state.owns(book.OwnerID) {
			m.errMsg = "Only your own books can be edited"
			return m, nil
		}
		m.status, m.errMsg = "", ""
		m.panel = editingPanel(book)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if !hasBook || !m.state.owns(book.OwnerID) {
			m.errMsg = "Only your own books can be deleted"
			return m, nil
		}
		m.confirmDelete = true
	case key.Matches(msg, keys.mine):
		m.mine = !m.mine
		m.idx = 0
		return m, m.reload()
	case key.Matches(msg, keys.category):
		m.category = (m.category + 1) % len(shelfCategories)
		m.idx = 0
		return m, m.reload()
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.refresh):
		return m, m.reload()
	case key.Matches(msg, keys.desk):
		return m, func() tea.Msg { return NavigateTo{Page: pageDesk} }
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

func (m *ShelfModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if book, ok := m.selected(); ok {
			m.panel = viewingPanel(book)
		} else {
			m.panel = emptyPanel()
		}
		return m, nil
	case key.Matches(msg, keys.save):
		return m, m.save()
	}

	var cmd tea.Cmd
	m.panel.form, cmd = m.panel.form.update(msg)
	return m, cmd
}

func (m *ShelfModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.idx = 0
		return m, m.reload()
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.idx = 0
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *ShelfModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		book, ok := m.selected()
		if !ok {
			return m, nil
		}
		ctx := m.state.ctx
		serverAdapter := m.state.adapter
		return m, func() tea.Msg {
			return bookDeletedMsg{id: book.ID, err: serverAdapter.DeleteBook(ctx, book.ID)}
		}
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

// save validates the form and sends a create or a partial update.
func (m *ShelfModel) save() tea.Cmd {
	ctx := m.state.ctx
	serverAdapter := m.state.adapter

	switch m.panel.mode {
	case panelCreating:
		book, err := m.panel.form.newBook()
		if err != nil {
			m.setFormError(err.Error())
			return nil
		}
		return func() tea.Msg {
			created, err := serverAdapter.CreateBook(ctx, book)
			return bookSavedMsg{book: created, err: err}
		}
	case panelEditing:
		id := m.panel.book.ID
		update, err := m.panel.form.changes(m.panel.book)
		if err != nil {
			m.setFormError(err.Error())
			return nil
		}
		return func() tea.Msg {
			updated, err := serverAdapter.UpdateBook(ctx, id, update)
			return bookSavedMsg{book: updated, err: err}
		}
	}
	return nil
}

func (m *ShelfModel) setFormError(msg string) {
	if m.panel.editing() {
		m.panel.form.errMsg = msg
		return
	}
	m.errMsg = msg
}

// refreshPanel follows the cursor while a book is being viewed.
func (m *ShelfModel) refreshPanel() {
	if m.panel.editing() {
		return
	}
	if book, ok := m.selected(); ok && m.panel.mode == panelViewing {
		if m.panel.book.ID != book.ID {
			m.panel = viewingPanel(book)
		} else {
			m.panel.book = book
		}
		return
	}
	if len(m.books) == 0 {
		m.panel = emptyPanel()
	}
}

func (m *ShelfModel) upsert(book models.Book) {
	for i := range m.books {
		if m.books[i].ID == book.ID {
			m.books[i] = book
			m.idx = i
			return
		}
	}
	m.books = append([]models.Book{book}, m.books...)
	m.idx = 0
}

func (m *ShelfModel) remove(id string) {
	for i := range m.books {
		if m.books[i].ID == id {
			m.books = append(m.books[:i], m.books[i+1:]...)
			break
		}
	}
	if m.idx >= len(m.books) {
		m.idx = max(len(m.books)-1, 0)
	}
	if m.panel.book.ID == id {
		m.panel = emptyPanel()
	}
	m.refreshPanel()
}

// View implements [tea.Model].
func (m *ShelfModel) View() string {
	t := m.state.theme

	scope := "public"
	if m.mine {
		scope = "mine"
	}
	filters := fmt.Sprintf("%s · %s", scope, shelfCategories[m.category])
	if author := strings.TrimSpace(m.search.Value()); author != "" || m.searching {
		filters += " · author: " + m.search.View()
	}

	var list strings.Builder
	list.WriteString(t.faint().Render(filters))
	list.WriteString("\n\n")
	switch {
	case m.loading && len(m.books) == 0:
		list.WriteString("Loading...")
	case len(m.books) == 0:
		list.WriteString("No books yet. Press n to write one.")
	}
	for i, book := range m.books {
		line := fitText(book.Title, 28)
		if !book.IsPublic {
			line += " (private)"
		}
		if i == m.idx {
			list.WriteString(t.selected().Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteString("\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(40).Render(list.String()),
		m.panel.view(t),
	)
	if m.confirmDelete {
		book, _ := m.selected()
		body += "\n" + overlayBoxStyle.BorderForeground(t.accent).Render(fmt.Sprintf("Delete %q? y/n", book.Title))
	}
	body += statusLine(m.status, m.errMsg)

	hotKeys := "↑/↓: select │ enter: open │ ←/→: page │ y: copy │ n: new │ e: edit │ d: delete │ m: mine │ c: category │ /: author │ s: desk │ t: theme │ L: logout"
	if m.panel.editing() {
		hotKeys = "tab: next field │ space: change │ ctrl+s: save │ esc: cancel"
	}

	title := "STORYBOOK · SHELF"
	if name := m.state.session.User.Username; name != "" {
		title += " · " + name
	}
	return renderPage(t.title().Render(title), body, hotKeys)
}
