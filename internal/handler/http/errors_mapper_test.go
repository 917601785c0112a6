package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-storybook/internal/app"
	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation detail", fmt.Errorf("create: %w", validators.NewFieldError("title", "is required")), http.StatusBadRequest, "title is required"},
		{"bad json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"conflict", fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists), http.StatusBadRequest, app.MsgUsernameAlreadyExists},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},
		{"no token", service.ErrNoToken, http.StatusUnauthorized, app.MsgNoToken},
		{"bad token", fmt.Errorf("%w: expired", service.ErrTokenIsExpiredOrInvalid), http.StatusUnauthorized, app.MsgTokenIsNotValid},
		{"forbidden", fmt.Errorf("book update failed: %w", service.ErrForbidden), http.StatusForbidden, app.MsgNotAuthorized},
		{"book not found", fmt.Errorf("x: %w", store.ErrBookNotFound), http.StatusNotFound, app.MsgBookNotFound},
		{"sticker not found", store.ErrStickerNotFound, http.StatusNotFound, app.MsgStickerNotFound},
		{"store down", fmt.Errorf("%w: dial tcp: refused", store.ErrStoreUnavailable), http.StatusInternalServerError, app.MsgStoreUnavailable},
		{"query failure hides details", fmt.Errorf("%w: syntax error", store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
