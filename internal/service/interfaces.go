package service

import (
	"context"

	"github.com/MKhiriev/go-storybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues identity tokens.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BookService is the ownership-scoped book collection.
type BookService interface {
	// ListBooks returns public books, or the books of filter.OwnerID when it
	// is set, most recently updated first.
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	CreateBook(ctx context.Context, identity models.Identity, book models.NewBook) (models.Book, error)
	UpdateBook(ctx context.Context, identity models.Identity, id string, update models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, identity models.Identity, id string) error
}

// StickerService is the ownership-scoped sticker collection. Every call is
// made on behalf of an authenticated identity.
type StickerService interface {
	ListStickers(ctx context.Context, identity models.Identity) ([]models.Sticker, error)
	CreateSticker(ctx context.Context, identity models.Identity, sticker models.NewSticker) (models.Sticker, error)
	UpdateSticker(ctx context.Context, identity models.Identity, id string, update models.StickerUpdate) (models.Sticker, error)
	DeleteSticker(ctx context.Context, identity models.Identity, id string) error
}

// BackfillService repairs books stored without an owner.
type BackfillService interface {
	// AssignOrphanBooks gives every ownerless book to the user named
	// ownerUsername, or to the oldest user when the name is empty. With
	// dryRun set nothing is written.
	AssignOrphanBooks(ctx context.Context, ownerUsername string, dryRun bool) (models.BackfillReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
