package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storybook/internal/app"
	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/validators"
	"github.com/MKhiriev/go-storybook/models"
)

var moon = models.Book{
	ID:        "book-moon",
	Title:     "Moon",
	Author:    "Luna",
	Pages:     models.Pages{"The moon rose."},
	Category:  models.CategoryPoem,
	IsPublic:  false,
	OwnerID:   luna.ID,
	CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

func TestListBooks(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		headers    map[string]string
		wantFilter models.BookFilter
	}{
		{"public", "/api/books", nil, models.BookFilter{}},
		{"filtered", "/api/books?category=Poem&author=Lu", nil, models.BookFilter{Category: models.CategoryPoem, Author: "Lu"}},
		{"mine", "/api/books?mine=true", tokenHeader("token-luna"), models.BookFilter{OwnerID: luna.ID}},
		{"token ignored without mine", "/api/books?category=All", tokenHeader("token-luna"), models.BookFilter{Category: models.CategoryAll}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectToken(luna)
			m.books.EXPECT().ListBooks(gomock.Any(), tt.wantFilter).Return([]models.Book{moon}, nil)

			rr := doRequest(t, h.Init(), http.MethodGet, tt.target, "", tt.headers)

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, []models.Book{moon}, decodeBody[[]models.Book](t, rr))
		})
	}
}

func TestListBooks_Errors(t *testing.T) {
	t.Run("mine without token", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := doRequest(t, h.Init(), http.MethodGet, "/api/books?mine=true", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgNoToken, messageOf(t, rr))
	})

	t.Run("store unavailable", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.books.EXPECT().ListBooks(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("listing books: %w", store.ErrStoreUnavailable))

		rr := doRequest(t, h.Init(), http.MethodGet, "/api/books", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, app.MsgStoreUnavailable, messageOf(t, rr))
	})
}

func TestCreateBook(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectToken(luna)
		isPublic := false
		m.books.EXPECT().CreateBook(gomock.Any(), luna, models.NewBook{
			Title:    "Moon",
			Author:   "Luna",
			Pages:    models.Pages{"The moon rose."},
			Category: models.CategoryPoem,
			IsPublic: &isPublic,
		}).Return(moon, nil)

		body := `{"title":"Moon","author":"Luna","pages":["The moon rose."],"category":"Poem","isPublic":false,"owner":"someone-else"}`
		rr := doRequest(t, h.Init(), http.MethodPost, "/api/books", body, tokenHeader("token-luna"))

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Equal(t, moon, decodeBody[models.Book](t, rr))
	})

	t.Run("no token", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := doRequest(t, h.Init(), http.MethodPost, "/api/books", `{"title":"Moon"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgNoToken, messageOf(t, rr))
	})

	t.Run("validation failure", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectToken(luna)
		m.books.EXPECT().CreateBook(gomock.Any(), luna, gomock.Any()).
			Return(models.Book{}, &validators.ValidationError{Fields: map[string]string{"title": "is required"}})

		rr := doRequest(t, h.Init(), http.MethodPost, "/api/books", `{"pages":["x"]}`, tokenHeader("token-luna"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "title is required", messageOf(t, rr))
	})
}

func TestUpdateBook(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"updated", nil, http.StatusOK, ""},
		{"not owner", fmt.Errorf("book update failed: %w: book-moon", service.ErrForbidden), http.StatusForbidden, app.MsgNotAuthorized},
		{"missing", fmt.Errorf("book update failed: %w", store.ErrBookNotFound), http.StatusNotFound, app.MsgBookNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectToken(sol)

			title := "Sun"
			updated := moon
			updated.Title = title
			m.books.EXPECT().UpdateBook(gomock.Any(), sol, "book-moon", models.BookUpdate{Title: &title}).
				Return(updated, tt.serviceErr)

			rr := doRequest(t, h.Init(), http.MethodPut, "/api/books/book-moon", `{"title":"Sun"}`, tokenHeader("token-sol"))

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, messageOf(t, rr))
				return
			}
			assert.Equal(t, "Sun", decodeBody[models.Book](t, rr).Title)
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectToken(luna)
		m.books.EXPECT().DeleteBook(gomock.Any(), luna, "book-moon").Return(nil)

		rr := doRequest(t, h.Init(), http.MethodDelete, "/api/books/book-moon", "", tokenHeader("token-luna"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, app.MsgBookDeleted, messageOf(t, rr))
	})

	t.Run("forbidden", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectToken(sol)
		m.books.EXPECT().DeleteBook(gomock.Any(), sol, "book-moon").Return(service.ErrForbidden)

		rr := doRequest(t, h.Init(), http.MethodDelete, "/api/books/book-moon", "", tokenHeader("token-sol"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, app.MsgNotAuthorized, messageOf(t, rr))
	})
}

func TestBooksRoutes_UnsupportedMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := doRequest(t, h.Init(), http.MethodPatch, "/api/books/book-moon", `{}`, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgRouteNotFound, messageOf(t, rr))
}
