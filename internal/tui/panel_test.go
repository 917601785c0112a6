package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storybook/models"
)

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Pages
	}{
		{name: "single page", text: "Once upon a time", want: models.Pages{"Once upon a time"}},
		{name: "two pages", text: "first\n---\nsecond", want: models.Pages{"first", "second"}},
		{name: "multi-line page", text: "a\nb\n---\nc", want: models.Pages{"a\nb", "c"}},
		{name: "blank pages dropped", text: "---\n  \n---\nonly\n---", want: models.Pages{"only"}},
		{name: "separator with spaces", text: "x\n  ---  \ny", want: models.Pages{"x", "y"}},
		{name: "empty", text: "", want: models.Pages{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPages(tt.text))
		})
	}
}

func TestJoinPages_SplitsBack(t *testing.T) {
	pages := models.Pages{"The moon rose.", "Luna waved\nat the stars."}
	assert.Equal(t, pages, splitPages(joinPages(pages)))
}

func TestBookForm_NewBook(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		author  string
		pages   string
		wantErr error
	}{
		{name: "valid", title: " Moon ", author: "Luna", pages: "one\n---\ntwo"},
		{name: "missing title", title: "  ", author: "Luna", pages: "one", wantErr: errTitleRequired},
		{name: "missing author", title: "Moon", author: "", pages: "one", wantErr: errAuthorMissing},
		{name: "no pages", title: "Moon", author: "Luna", pages: "---", wantErr: errPagesRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newBookForm(models.Book{Category: models.CategoryPoem})
			form.title.SetValue(tt.title)
			form.author.SetValue(tt.author)
			form.pages.SetValue(tt.pages)

			got, err := form.newBook()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Moon", got.Title)
			assert.Equal(t, models.Pages{"one", "two"}, got.Pages)
			assert.Equal(t, models.CategoryPoem, got.Category)
			require.NotNil(t, got.IsPublic)
			assert.False(t, *got.IsPublic)
		})
	}
}

func TestBookForm_Changes(t *testing.T) {
	original := models.Book{
		ID:       "book-1",
		Title:    "Moon",
		Author:   "Luna",
		Pages:    models.Pages{"one"},
		Category: models.CategoryStory,
		IsPublic: false,
	}

	t.Run("unchanged", func(t *testing.T) {
		_, err := newBookForm(original).changes(original)
		assert.ErrorIs(t, err, errNothingToSave)
	})

	t.Run("only changed fields", func(t *testing.T) {
		form := newBookForm(original)
		form.title.SetValue("Moonrise")
		form.isPublic = true

		got, err := form.changes(original)
		require.NoError(t, err)
		assert.Equal(t, models.BookUpdate{Title: ptr("Moonrise"), IsPublic: ptr(true)}, got)
	})

	t.Run("pages and category", func(t *testing.T) {
		form := newBookForm(original)
		form.pages.SetValue("one\n---\ntwo")
		form.category = 1

		got, err := form.changes(original)
		require.NoError(t, err)
		assert.Equal(t, models.Pages{"one", "two"}, got.Pages)
		require.NotNil(t, got.Category)
		assert.Equal(t, models.Categories[1], *got.Category)
		assert.Nil(t, got.Title)
		assert.Nil(t, got.Author)
	})

	t.Run("invalid form", func(t *testing.T) {
		form := newBookForm(original)
		form.author.SetValue("")

		_, err := form.changes(original)
		assert.ErrorIs(t, err, errAuthorMissing)
	})
}

func TestBookForm_CycleFields(t *testing.T) {
	form := newBookForm(models.Book{Category: models.CategoryStory, IsPublic: true})

	form, _ = form.update(press("tab"))
	form, _ = form.update(press("tab"))
	require.Equal(t, fieldCategory, form.focus)

	form, _ = form.update(press(" "))
	assert.Equal(t, models.Categories[1], models.Categories[form.category])
	form, _ = form.update(press("left"))
	form, _ = form.update(press("left"))
	assert.Equal(t, models.Categories[len(models.Categories)-1], models.Categories[form.category])

	form, _ = form.update(press("tab"))
	form, _ = form.update(press(" "))
	assert.False(t, form.isPublic)

	form, _ = form.update(press("shift+tab"))
	form, _ = form.update(press("shift+tab"))
	form, _ = form.update(press("shift+tab"))
	assert.Equal(t, fieldTitle, form.focus)
	form, _ = form.update(press("shift+tab"))
	assert.Equal(t, fieldPages, form.focus)
}

func TestBookPanel_Paging(t *testing.T) {
	panel := viewingPanel(models.Book{Pages: models.Pages{"one", "two"}})

	text, ok := panel.currentPage()
	require.True(t, ok)
	assert.Equal(t, "one", text)

	panel.prevPage()
	assert.Equal(t, 0, panel.page)

	panel.nextPage()
	panel.nextPage()
	assert.Equal(t, 1, panel.page)
	text, _ = panel.currentPage()
	assert.Equal(t, "two", text)
}

func TestBookPanel_CurrentPageOutsideViewing(t *testing.T) {
	_, ok := emptyPanel().currentPage()
	assert.False(t, ok)

	_, ok = editingPanel(models.Book{Pages: models.Pages{"one"}}).currentPage()
	assert.False(t, ok)

	_, ok = viewingPanel(models.Book{}).currentPage()
	assert.False(t, ok)
}

func TestBookPanel_View(t *testing.T) {
	th := themeByName("mint")

	assert.Contains(t, emptyPanel().view(th), "Select a book")
	assert.Contains(t, creatingPanel().view(th), "New book")

	view := viewingPanel(models.Book{Title: "Moon", Author: "Luna", Category: models.CategoryPoem, Pages: models.Pages{"hello"}}).view(th)
	assert.Contains(t, view, "Moon")
	assert.Contains(t, view, "private")
	assert.Contains(t, view, "page 1 of 1")
}
