// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/mock"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/validators"
	"github.com/MKhiriev/go-storybook/models"
)

func newTestBookSvc(t *testing.T) (*bookService, *mock.MockBookRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	books := mock.NewMockBookRepository(ctrl)

	svc := NewBookService(books, validators.NewStructValidator(), logger.Nop()).(*bookService)
	svc.ids = &sequenceIDs{prefix: "book"}
	svc.now = fixedClock

	return svc, books
}

func lunasBook() models.Book {
	return models.Book{
		ID: "book-1", Title: "Moon", Author: "Luna", Pages: models.Pages{"p1"},
		Category: models.CategoryStory, IsPublic: false, OwnerID: luna.ID,
	}
}

// ── ListBooks ────────────────────────────────────────────────────────────────

func TestBookService_ListBooks_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter models.BookFilter
		want   models.BookFilter
	}{
		{
			name:   "public, no filters",
			filter: models.BookFilter{},
			want:   models.BookFilter{},
		},
		{
			name:   "All means every category",
			filter: models.BookFilter{Category: models.CategoryAll},
			want:   models.BookFilter{},
		},
		{
			name:   "mine with category and trimmed author",
			filter: models.BookFilter{OwnerID: luna.ID, Category: models.CategoryPoem, Author: "  lun "},
			want:   models.BookFilter{OwnerID: luna.ID, Category: models.CategoryPoem, Author: "lun"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, books := newTestBookSvc(t)
			books.EXPECT().ListBooks(gomock.Any(), tt.want).Return([]models.Book{}, nil)

			got, err := svc.ListBooks(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestBookService_ListBooks_UnknownCategory(t *testing.T) {
	svc, books := newTestBookSvc(t)
	books.EXPECT().
		ListBooks(gomock.Any(), models.BookFilter{Category: "Cookbook"}).
		Return([]models.Book{}, nil)

	got, err := svc.ListBooks(context.Background(), models.BookFilter{Category: "Cookbook"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookService_ListBooks_StoreError(t *testing.T) {
	svc, books := newTestBookSvc(t)
	books.EXPECT().ListBooks(gomock.Any(), gomock.Any()).Return(nil, store.ErrStoreUnavailable)

	_, err := svc.ListBooks(context.Background(), models.BookFilter{})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── CreateBook ───────────────────────────────────────────────────────────────

func TestBookService_CreateBook_OwnerAndDefaults(t *testing.T) {
	svc, books := newTestBookSvc(t)

	want := models.Book{
		ID: "book-1", Title: "Moon", Author: "Luna", Pages: models.Pages{"p1"},
		Category: models.CategoryStory, IsPublic: true, OwnerID: luna.ID,
		CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}
	books.EXPECT().CreateBook(gomock.Any(), want).Return(want, nil)

	got, err := svc.CreateBook(context.Background(), luna, models.NewBook{
		Title: " Moon ", Author: "Luna", Pages: models.Pages{"p1"},
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBookService_CreateBook_Private(t *testing.T) {
	svc, books := newTestBookSvc(t)

	books.EXPECT().CreateBook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Book) (models.Book, error) {
			assert.False(t, b.IsPublic)
			assert.Equal(t, models.CategoryJournal, b.Category)
			assert.Equal(t, luna.ID, b.OwnerID)
			return b, nil
		})

	_, err := svc.CreateBook(context.Background(), luna, models.NewBook{
		Title: "Diary", Author: "Someone Else", Pages: models.Pages{"day 1"},
		Category: models.CategoryJournal, IsPublic: ptr(false),
	})
	require.NoError(t, err)
}

func TestBookService_CreateBook_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		book  models.NewBook
		field string
	}{
		{name: "blank title", book: models.NewBook{Title: "  ", Author: "a", Pages: models.Pages{"p"}}, field: "title"},
		{name: "no pages", book: models.NewBook{Title: "t", Author: "a", Pages: models.Pages{}}, field: "pages"},
		{name: "unknown category", book: models.NewBook{Title: "t", Author: "a", Pages: models.Pages{"p"}, Category: "Cookbook"}, field: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestBookSvc(t)

			_, err := svc.CreateBook(context.Background(), luna, tt.book)
			var verr *validators.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

// ── UpdateBook ───────────────────────────────────────────────────────────────

func TestBookService_UpdateBook_Owner(t *testing.T) {
	svc, books := newTestBookSvc(t)
	book := lunasBook()
	update := models.BookUpdate{Title: ptr("Full Moon"), IsPublic: ptr(true)}

	updated := book
	updated.Title, updated.IsPublic, updated.UpdatedAt = "Full Moon", true, fixedNow

	gomock.InOrder(
		books.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil),
		books.EXPECT().UpdateBook(gomock.Any(), book.ID, luna.ID, update, fixedNow).Return(updated, nil),
	)

	got, err := svc.UpdateBook(context.Background(), luna, book.ID, models.BookUpdate{Title: ptr(" Full Moon"), IsPublic: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestBookService_UpdateBook_NotOwner(t *testing.T) {
	svc, books := newTestBookSvc(t)
	books.EXPECT().GetBook(gomock.Any(), "book-1").Return(lunasBook(), nil)
	books.EXPECT().UpdateBook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateBook(context.Background(), sol, "book-1", models.BookUpdate{Title: ptr("Mine now")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookService_UpdateBook_Orphan(t *testing.T) {
	svc, books := newTestBookSvc(t)
	orphan := lunasBook()
	orphan.OwnerID = ""
	books.EXPECT().GetBook(gomock.Any(), "book-1").Return(orphan, nil)

	_, err := svc.UpdateBook(context.Background(), luna, "book-1", models.BookUpdate{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	svc, books := newTestBookSvc(t)
	books.EXPECT().GetBook(gomock.Any(), "nope").Return(models.Book{}, store.ErrBookNotFound)

	_, err := svc.UpdateBook(context.Background(), luna, "nope", models.BookUpdate{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestBookService_UpdateBook_EmptyUpdate(t *testing.T) {
	svc, books := newTestBookSvc(t)
	book := lunasBook()
	books.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)

	got, err := svc.UpdateBook(context.Background(), luna, book.ID, models.BookUpdate{})
	require.NoError(t, err)
	assert.Equal(t, book, got)
}

func TestBookService_UpdateBook_InvalidField(t *testing.T) {
	svc, books := newTestBookSvc(t)
	books.EXPECT().GetBook(gomock.Any(), "book-1").Return(lunasBook(), nil)
	books.EXPECT().UpdateBook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateBook(context.Background(), luna, "book-1", models.BookUpdate{Pages: models.Pages{}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookService_UpdateBook_OwnershipBeforeValidation(t *testing.T) {
	invalid := models.BookUpdate{Pages: models.Pages{}}

	t.Run("not owner", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().GetBook(gomock.Any(), "book-1").Return(lunasBook(), nil)

		_, err := svc.UpdateBook(context.Background(), sol, "book-1", invalid)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.NotErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().GetBook(gomock.Any(), "nope").Return(models.Book{}, store.ErrBookNotFound)

		_, err := svc.UpdateBook(context.Background(), luna, "nope", invalid)
		assert.ErrorIs(t, err, store.ErrBookNotFound)
		assert.NotErrorIs(t, err, ErrValidation)
	})
}

// ── DeleteBook ───────────────────────────────────────────────────────────────

func TestBookService_DeleteBook(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		gomock.InOrder(
			books.EXPECT().GetBook(gomock.Any(), "book-1").Return(lunasBook(), nil),
			books.EXPECT().DeleteBook(gomock.Any(), "book-1", luna.ID).Return(nil),
		)

		assert.NoError(t, svc.DeleteBook(context.Background(), luna, "book-1"))
	})

	t.Run("other user", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().GetBook(gomock.Any(), "book-1").Return(lunasBook(), nil)

		assert.ErrorIs(t, svc.DeleteBook(context.Background(), sol, "book-1"), ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().GetBook(gomock.Any(), "book-1").Return(models.Book{}, store.ErrBookNotFound)

		assert.ErrorIs(t, svc.DeleteBook(context.Background(), luna, "book-1"), store.ErrBookNotFound)
	})

	t.Run("deleted in between", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().GetBook(gomock.Any(), "book-1").Return(lunasBook(), nil)
		books.EXPECT().DeleteBook(gomock.Any(), "book-1", luna.ID).Return(store.ErrBookNotFound)

		assert.ErrorIs(t, svc.DeleteBook(context.Background(), luna, "book-1"), store.ErrBookNotFound)
	})
}
