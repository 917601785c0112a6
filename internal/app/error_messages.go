// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-storybook server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the {"message": ...} body of HTTP responses. Keeping them in one place
// ensures consistent wording throughout the API and lets the terminal client
// recognise them.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUsernameAlreadyExists is returned when registration picks a taken
	// username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgNoToken is returned when a protected route is called without a
	// token.
	MsgNoToken = "no token, authorization denied"

	// MsgTokenIsNotValid is returned when the token is malformed, expired or
	// signed with a different key.
	MsgTokenIsNotValid = "token is not valid"

	// MsgNotAuthorized is returned when the caller tries to change a record
	// owned by someone else.
	MsgNotAuthorized = "not authorized to modify this resource"

	MsgBookNotFound    = "book not found"
	MsgStickerNotFound = "sticker not found"

	// MsgStoreUnavailable is returned when the database can't be reached.
	// It never carries driver details.
	MsgStoreUnavailable = "storage is unavailable, try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgRouteNotFound answers unknown routes and unsupported methods alike.
	MsgRouteNotFound = "route not found"

	MsgBookDeleted    = "Book deleted"
	MsgStickerDeleted = "Sticker deleted"
)
