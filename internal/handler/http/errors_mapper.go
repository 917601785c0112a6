package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storybook/internal/app"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/internal/validators"
)

type errorStatus struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorStatus{
	ErrInvalidJSON:                 {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrValidation:          {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:  {http.StatusBadRequest, app.MsgInvalidCredentials},
	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, app.MsgUsernameAlreadyExists},

	service.ErrNoToken:                 {http.StatusUnauthorized, app.MsgNoToken},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsNotValid},

	service.ErrForbidden: {http.StatusForbidden, app.MsgNotAuthorized},

	store.ErrBookNotFound:    {http.StatusNotFound, app.MsgBookNotFound},
	store.ErrStickerNotFound: {http.StatusNotFound, app.MsgStickerNotFound},

	store.ErrStoreUnavailable: {http.StatusInternalServerError, app.MsgStoreUnavailable},
}

// statusFromError maps err to a status code and the message for the
// response body. Validation errors carry their field details; unknown
// errors become a bare 500.
func statusFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for target, s := range errorStatusMap {
		if errors.Is(err, target) {
			return s.status, s.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes its mapped response. Server-side failures
// are logged as errors, client mistakes at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, msg, status)
}
