// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the terminal client's view of the go-storybook
// server.
//
// The primary abstraction is [ServerAdapter], which keeps the TUI unaware of
// the transport. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error responses are mapped from HTTP status codes by mapHTTPError to the
// sentinel values in errors.go, so callers can use [errors.Is] (e.g.
// [ErrForbidden] for 403, [ErrUnauthorized] for 401). The server's
// {"message": ...} text is kept in the error string.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-storybook server.
// Implementations handle serialisation, the auth header and mapping of
// transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored token, or "" if none has been set.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// ListBooks returns public books, or the caller's own books when
	// filter.OwnerID is set. The server derives the owner from the token, so
	// only the presence of OwnerID matters.
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	CreateBook(ctx context.Context, book models.NewBook) (models.Book, error)
	UpdateBook(ctx context.Context, id string, update models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, id string) error

	ListStickers(ctx context.Context) ([]models.Sticker, error)
	CreateSticker(ctx context.Context, sticker models.NewSticker) (models.Sticker, error)
	UpdateSticker(ctx context.Context, id string, update models.StickerUpdate) (models.Sticker, error)
	DeleteSticker(ctx context.Context, id string) error

	// GetServerVersion returns the plain-text server version.
	GetServerVersion(ctx context.Context) (string, error)
}
