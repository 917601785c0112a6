package store

import "github.com/MKhiriev/go-storybook/internal/logger"

// Storages aggregates the repositories sharing one database connection.
type Storages struct {
	UserRepository    UserRepository
	BookRepository    BookRepository
	StickerRepository StickerRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		BookRepository:    NewBookRepository(db, log),
		StickerRepository: NewStickerRepository(db, log),
	}
}
