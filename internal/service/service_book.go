package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/internal/validators"
	"github.com/MKhiriev/go-storybook/models"
)

type bookService struct {
	bookRepository store.BookRepository

	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, validator validators.Validator, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		now:            utcNow,
		logger:         logger,
	}
}

// ListBooks trims the author filter before querying. "All" and an empty
// category mean no category filter; an unknown category matches no book.
func (b *bookService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	if filter.Category == models.CategoryAll {
		filter.Category = ""
	}
	filter.Author = strings.TrimSpace(filter.Author)

	books, err := b.bookRepository.ListBooks(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.ListBooks").Msg("listing books failed")
		return nil, fmt.Errorf("listing books failed: %w", err)
	}

	return books, nil
}

// CreateBook stores a new book owned by identity. Category defaults to
// Story and visibility to public.
func (b *bookService) CreateBook(ctx context.Context, identity models.Identity, newBook models.NewBook) (models.Book, error) {
	log := logger.FromContext(ctx)

	newBook.Title = strings.TrimSpace(newBook.Title)
	newBook.Author = strings.TrimSpace(newBook.Author)
	if err := b.validator.Validate(ctx, newBook); err != nil {
		return models.Book{}, err
	}

	category := newBook.Category
	if category == "" {
		category = models.CategoryStory
	}
	isPublic := true
	if newBook.IsPublic != nil {
		isPublic = *newBook.IsPublic
	}

	now := b.now()
	book, err := b.bookRepository.CreateBook(ctx, models.Book{
		ID:        b.ids.Generate(),
		Title:     newBook.Title,
		Author:    newBook.Author,
		Pages:     newBook.Pages,
		Category:  category,
		IsPublic:  isPublic,
		OwnerID:   identity.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Err(err).Str("func", "*bookService.CreateBook").Str("owner", identity.ID).Msg("book creation failed")
		return models.Book{}, fmt.Errorf("book creation failed: %w", err)
	}

	return book, nil
}

// UpdateBook applies the supplied fields of update to a book owned by
// identity. An update without fields returns the book unchanged.
func (b *bookService) UpdateBook(ctx context.Context, identity models.Identity, id string, update models.BookUpdate) (models.Book, error) {
	trimPtr(update.Title)
	trimPtr(update.Author)

	book, err := ownedMutation(ctx, identity, id, b.bookRepository.GetBook,
		func(ctx context.Context, book models.Book) (models.Book, error) {
			if err := b.validator.Validate(ctx, update); err != nil {
				return models.Book{}, err
			}
			if update.Empty() {
				return book, nil
			}
			return b.bookRepository.UpdateBook(ctx, book.ID, identity.ID, update, b.now())
		})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.UpdateBook").Str("book_id", id).Msg("book update failed")
		return models.Book{}, fmt.Errorf("book update failed: %w", err)
	}

	return book, nil
}

func (b *bookService) DeleteBook(ctx context.Context, identity models.Identity, id string) error {
	_, err := ownedMutation(ctx, identity, id, b.bookRepository.GetBook,
		func(ctx context.Context, book models.Book) (struct{}, error) {
			return struct{}{}, b.bookRepository.DeleteBook(ctx, book.ID, identity.ID)
		})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.DeleteBook").Str("book_id", id).Msg("book deletion failed")
		return fmt.Errorf("book deletion failed: %w", err)
	}

	return nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
