package store

import (
	"database/sql"

	"github.com/MKhiriev/go-storybook/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

func scanBook(row rowScanner) (models.Book, error) {
	var (
		book     models.Book
		category string
		ownerID  sql.NullString
	)

	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Pages,
		&category,
		&book.IsPublic,
		&ownerID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	book.Category = models.Category(category)
	book.OwnerID = ownerID.String

	return book, err
}

func scanSticker(row rowScanner) (models.Sticker, error) {
	var (
		sticker     models.Sticker
		stickerType string
	)

	err := row.Scan(
		&sticker.ID,
		&sticker.Text,
		&sticker.Emoji,
		&sticker.Color,
		&sticker.X,
		&sticker.Y,
		&sticker.Rotation,
		&stickerType,
		&sticker.Size,
		&sticker.OwnerID,
		&sticker.CreatedAt,
		&sticker.UpdatedAt,
	)
	sticker.Type = models.StickerType(stickerType)

	return sticker, err
}
