package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/internal/utils"
)

// authTokenHeader carries the identity token. "Authorization: Bearer" is
// accepted as a fallback.
const authTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the token from the x-auth-token header (or a bearer
// Authorization header), validates it via [service.AuthService.ParseToken]
// and, on success, stores the caller identity in the request context with
// [utils.WithIdentity] before delegating to the next handler.
//
// A missing token is answered with 401 "no token, authorization denied",
// an unusable one with 401 "token is not valid". The next handler is not
// called in either case.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity())))
	})
}

// authWhen applies [Handler.auth] only to requests for which required
// returns true; other requests pass through untouched and carry no
// identity.
func (h *Handler) authWhen(required func(r *http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authenticated := h.auth(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if required(r) {
				authenticated.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromRequest extracts the raw token string.
//
// It returns [service.ErrNoToken] when neither header is set and an error
// matching [service.ErrTokenIsExpiredOrInvalid] when the Authorization
// header is not a "Bearer <token>" pair.
func getTokenFromRequest(r *http.Request) (string, error) {
	if token := r.Header.Get(authTokenHeader); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", service.ErrNoToken
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", service.ErrTokenIsExpiredOrInvalid, ErrInvalidAuthorizationHeader, err)
	}

	return token, nil
}
