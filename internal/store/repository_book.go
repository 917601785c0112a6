// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/models"
)

// bookRepository is the SQL implementation of [BookRepository] over the
// "books" table.
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by db.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// ListBooks returns the books matching filter, most recently updated first.
// The result is never nil.
func (r *bookRepository) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(r.builder(), filter, r.lowerFunc())
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.ListBooks").
			Str("owner_id", filter.OwnerID).
			Msg("failed to execute query for listing books")
		return nil, r.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 16)
	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.ListBooks").Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bookRepository.ListBooks").Msg("error occurred during rows iteration")
		return nil, r.wrapError(rowsErr, ErrScanningRows)
	}

	return books, nil
}

// GetBook loads a book by id regardless of owner and visibility.
func (r *bookRepository) GetBook(ctx context.Context, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("failed to build query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	book, err := scanBook(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBook").Str("book_id", id).Msg("failed to get book")
		return models.Book{}, r.wrapError(err, ErrExecutingQuery)
	}

	return book, nil
}

// CreateBook inserts book and returns the stored row.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookQuery(r.builder(), book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("failed to build query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBook(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.CreateBook").
			Str("owner_id", book.OwnerID).
			Msg("failed to insert book")
		return models.Book{}, r.wrapError(err, ErrExecutingQuery)
	}

	return created, nil
}

// UpdateBook applies update to the book with id and ownerID. No matching row
// yields [ErrBookNotFound].
func (r *bookRepository) UpdateBook(ctx context.Context, id, ownerID string, update models.BookUpdate, updatedAt time.Time) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(r.builder(), id, ownerID, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("failed to build query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanBook(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.UpdateBook").
			Str("book_id", id).
			Msg("failed to update book")
		return models.Book{}, r.wrapError(err, ErrExecutingQuery)
	}

	return updated, nil
}

// DeleteBook removes the book with id and ownerID. No matching row yields
// [ErrBookNotFound].
func (r *bookRepository) DeleteBook(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookQuery(r.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Str("book_id", id).Msg("failed to delete book")
		return r.wrapError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.wrapError(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// CountOrphanBooks counts books with a NULL or empty owner.
func (r *bookRepository) CountOrphanBooks(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountOrphanBooksQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CountOrphanBooks").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*bookRepository.CountOrphanBooks").Msg("failed to count orphan books")
		return 0, r.wrapError(err, ErrExecutingQuery)
	}

	return count, nil
}

// AssignOrphanBooks sets ownerID on every ownerless book.
func (r *bookRepository) AssignOrphanBooks(ctx context.Context, ownerID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAssignOrphanBooksQuery(r.builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.AssignOrphanBooks").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.AssignOrphanBooks").
			Str("owner_id", ownerID).
			Msg("failed to assign orphan books")
		return 0, r.wrapError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, r.wrapError(err, ErrExecutingStatement)
	}

	return affected, nil
}
