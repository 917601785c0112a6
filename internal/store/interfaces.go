package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-storybook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user. A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername yields ErrUserNotFound when nobody has the username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindOldestUser returns the first registered user.
	FindOldestUser(ctx context.Context) (models.User, error)
}

// BookRepository persists books.
type BookRepository interface {
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	// UpdateBook applies the non-nil fields of update to the book with id
	// owned by ownerID and returns the stored result.
	UpdateBook(ctx context.Context, id, ownerID string, update models.BookUpdate, updatedAt time.Time) (models.Book, error)
	DeleteBook(ctx context.Context, id, ownerID string) error

	// CountOrphanBooks counts books without an owner.
	CountOrphanBooks(ctx context.Context) (int64, error)
	// AssignOrphanBooks gives every ownerless book to ownerID and returns the
	// number of books changed.
	AssignOrphanBooks(ctx context.Context, ownerID string) (int64, error)
}

// StickerRepository persists desk stickers.
type StickerRepository interface {
	ListStickers(ctx context.Context, ownerID string) ([]models.Sticker, error)
	GetSticker(ctx context.Context, id string) (models.Sticker, error)
	CreateSticker(ctx context.Context, sticker models.Sticker) (models.Sticker, error)
	UpdateSticker(ctx context.Context, id, ownerID string, update models.StickerUpdate, updatedAt time.Time) (models.Sticker, error)
	DeleteSticker(ctx context.Context, id, ownerID string) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
