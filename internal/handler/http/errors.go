// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoIdentity means a protected handler was reached without the auth
	// middleware having stored an identity. It is a wiring bug.
	ErrNoIdentity = errors.New("no identity in request context")

	// ErrInvalidJSON is returned when a request body can't be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
