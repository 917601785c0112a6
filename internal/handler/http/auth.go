package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", resp.User.ID).Str("username", resp.User.Username).Msg("user registered")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}
