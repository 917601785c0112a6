package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storybook/internal/app"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/models"
)

// listBooks serves GET /api/books?category=&author=&mine=.
// Without mine the listing is public; with mine=true the auth middleware
// has already put the caller identity into the context.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.BookFilter{
		Category: models.Category(query.Get("category")),
		Author:   query.Get("author"),
	}

	if mineRequested(r) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoIdentity)
			return
		}
		filter.OwnerID = identity.ID
	}

	books, err := h.services.BookService.ListBooks(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var newBook models.NewBook
	if err := utils.DecodeJSON(r, &newBook); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), identity, newBook)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var update models.BookUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	book, err := h.services.BookService.UpdateBook(r.Context(), identity, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	if err := h.services.BookService.DeleteBook(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgBookDeleted, http.StatusOK)
}
