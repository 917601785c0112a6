package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storybook/internal/app"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/models"
)

func (h *Handler) listStickers(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	stickers, err := h.services.StickerService.ListStickers(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stickers, http.StatusOK)
}

func (h *Handler) createSticker(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var newSticker models.NewSticker
	if err := utils.DecodeJSON(r, &newSticker); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	sticker, err := h.services.StickerService.CreateSticker(r.Context(), identity, newSticker)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sticker, http.StatusCreated)
}

// updateSticker serves both edits and drags; a drag sends only x and y.
func (h *Handler) updateSticker(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var update models.StickerUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	sticker, err := h.services.StickerService.UpdateSticker(r.Context(), identity, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sticker, http.StatusOK)
}

func (h *Handler) deleteSticker(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	if err := h.services.StickerService.DeleteSticker(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgStickerDeleted, http.StatusOK)
}
