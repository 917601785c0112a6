package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storybook/models"
)

// pageSeparator splits pages in the page editor.
const pageSeparator = "---"

// panelMode tags the state of the book panel next to the shelf. Each mode
// uses only its own fields of [bookPanel].
type panelMode int

const (
	panelEmpty panelMode = iota
	panelViewing
	panelCreating
	panelEditing
)

// bookPanel shows one book or a book form.
//
//	panelEmpty     nothing selected
//	panelViewing   book and page
//	panelCreating  form
//	panelEditing   book (the original) and form
type bookPanel struct {
	mode panelMode
	book models.Book
	page int
	form bookForm
}

func emptyPanel() bookPanel {
	return bookPanel{mode: panelEmpty}
}

func viewingPanel(book models.Book) bookPanel {
	return bookPanel{mode: panelViewing, book: book}
}

func creatingPanel() bookPanel {
	return bookPanel{mode: panelCreating, form: newBookForm(models.Book{Category: models.CategoryStory, IsPublic: true})}
}

func editingPanel(book models.Book) bookPanel {
	return bookPanel{mode: panelEditing, book: book, form: newBookForm(book)}
}

func (p bookPanel) editing() bool {
	return p.mode == panelCreating || p.mode == panelEditing
}

func (p *bookPanel) nextPage() {
	if p.page < len(p.book.Pages)-1 {
		p.page++
	}
}

func (p *bookPanel) prevPage() {
	if p.page > 0 {
		p.page--
	}
}

// currentPage returns the text of the page being viewed.
func (p bookPanel) currentPage() (string, bool) {
	if p.mode != panelViewing || p.page < 0 || p.page >= len(p.book.Pages) {
		return "", false
	}
	return p.book.Pages[p.page], true
}

func (p bookPanel) view(t theme) string {
	switch p.mode {
	case panelViewing:
		return p.viewBook(t)
	case panelCreating:
		return t.title().Render("New book") + "\n" + p.form.view(t)
	case panelEditing:
		return t.title().Render("Edit · "+p.book.Title) + "\n" + p.form.view(t)
	default:
		return t.faint().Render("Select a book and press enter")
	}
}

func (p bookPanel) viewBook(t theme) string {
	var b strings.Builder

	visibility := "public"
	if !p.book.IsPublic {
		visibility = "private"
	}

	b.WriteString(t.title().Render(p.book.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("by %s · %s · %s\n", p.book.Author, p.book.Category, visibility))

	text, ok := p.currentPage()
	if !ok {
		text = "(no pages)"
	}
	b.WriteString(t.page().Render(text))
	b.WriteString("\n")
	b.WriteString(t.faint().Render(fmt.Sprintf("page %d of %d", min(p.page+1, len(p.book.Pages)), len(p.book.Pages))))

	return b.String()
}

// bookForm field indexes, in focus order.
const (
	fieldTitle = iota
	fieldAuthor
	fieldCategory
	fieldVisibility
	fieldPages
	fieldCount
)

type bookForm struct {
	title    textinput.Model
	author   textinput.Model
	category int
	isPublic bool
	pages    textarea.Model
	focus    int
	errMsg   string
}

func newBookForm(book models.Book) bookForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 50
	title.SetValue(book.Title)
	title.Focus()

	author := textinput.New()
	author.Placeholder = "Author"
	author.CharLimit = 100
	author.Width = 50
	author.SetValue(book.Author)

	pages := textarea.New()
	pages.Placeholder = "Write here. A line with " + pageSeparator + " starts a new page."
	pages.SetWidth(60)
	pages.SetHeight(8)
	pages.SetValue(joinPages(book.Pages))

	category := slices.Index(models.Categories, book.Category)
	if category < 0 {
		category = 0
	}

	return bookForm{
		title:    title,
		author:   author,
		category: category,
		isPublic: book.IsPublic,
		pages:    pages,
	}
}

func (f *bookForm) setFocus(field int) {
	f.title.Blur()
	f.author.Blur()
	f.pages.Blur()

	f.focus = (field + fieldCount) % fieldCount
	switch f.focus {
	case fieldTitle:
		f.title.Focus()
	case fieldAuthor:
		f.author.Focus()
	case fieldPages:
		f.pages.Focus()
	}
}

// update routes a message to the focused field. Category and visibility
// are cycled with space or the arrow keys.
func (f bookForm) update(msg tea.Msg) (bookForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus(f.focus - 1)
			return f, nil
		}

		switch f.focus {
		case fieldCategory:
			switch {
			case keyMsg.String() == "left":
				f.category = (f.category - 1 + len(models.Categories)) % len(models.Categories)
			case key.Matches(keyMsg, keys.cycle):
				f.category = (f.category + 1) % len(models.Categories)
			}
			return f, nil
		case fieldVisibility:
			if key.Matches(keyMsg, keys.cycle) {
				f.isPublic = !f.isPublic
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldAuthor:
		f.author, cmd = f.author.Update(msg)
	case fieldPages:
		f.pages, cmd = f.pages.Update(msg)
	}
	return f, cmd
}

func (f bookForm) view(t theme) string {
	marker := func(field int) string {
		if f.focus == field {
			return t.selected().Render(">")
		}
		return " "
	}

	visibility := "private"
	if f.isPublic {
		visibility = "public"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Title     %s\n", marker(fieldTitle), f.title.View()))
	b.WriteString(fmt.Sprintf("%s Author    %s\n", marker(fieldAuthor), f.author.View()))
	b.WriteString(fmt.Sprintf("%s Category  ‹ %s ›\n", marker(fieldCategory), models.Categories[f.category]))
	b.WriteString(fmt.Sprintf("%s Visible   ‹ %s ›\n", marker(fieldVisibility), visibility))
	b.WriteString(fmt.Sprintf("%s Pages\n", marker(fieldPages)))
	b.WriteString(f.pages.View())
	b.WriteString(statusLine("", f.errMsg))
	return b.String()
}

// newBook builds the creation request from the form.
func (f bookForm) newBook() (models.NewBook, error) {
	title := strings.TrimSpace(f.title.Value())
	author := strings.TrimSpace(f.author.Value())
	pages := splitPages(f.pages.Value())

	switch {
	case title == "":
		return models.NewBook{}, errTitleRequired
	case author == "":
		return models.NewBook{}, errAuthorMissing
	case len(pages) == 0:
		return models.NewBook{}, errPagesRequired
	}

	isPublic := f.isPublic
	return models.NewBook{
		Title:    title,
		Author:   author,
		Pages:    pages,
		Category: models.Categories[f.category],
		IsPublic: &isPublic,
	}, nil
}

// changes builds a partial update holding only the fields that differ from
// original. errNothingToSave means the form is unchanged.
func (f bookForm) changes(original models.Book) (models.BookUpdate, error) {
	candidate, err := f.newBook()
	if err != nil {
		return models.BookUpdate{}, err
	}

	var update models.BookUpdate
	if candidate.Title != original.Title {
		update.Title = &candidate.Title
	}
	if candidate.Author != original.Author {
		update.Author = &candidate.Author
	}
	if !slices.Equal(candidate.Pages, original.Pages) {
		update.Pages = candidate.Pages
	}
	if candidate.Category != original.Category {
		update.Category = &candidate.Category
	}
	if *candidate.IsPublic != original.IsPublic {
		update.IsPublic = candidate.IsPublic
	}

	if update.Empty() {
		return models.BookUpdate{}, errNothingToSave
	}
	return update, nil
}

// splitPages cuts editor text into trimmed, non-empty pages.
func splitPages(text string) models.Pages {
	pages := models.Pages{}
	var current []string

	flush := func() {
		page := strings.TrimSpace(strings.Join(current, "\n"))
		if page != "" {
			pages = append(pages, page)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == pageSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return pages
}

func joinPages(pages models.Pages) string {
	return strings.Join(pages, "\n"+pageSeparator+"\n")
}
