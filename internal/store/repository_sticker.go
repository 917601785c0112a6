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

// stickerRepository is the SQL implementation of [StickerRepository] over
// the "stickers" table.
type stickerRepository struct {
	*DB
	logger *logger.Logger
}

func NewStickerRepository(db *DB, logger *logger.Logger) StickerRepository {
	logger.Debug().Msg("creating sticker repository")
	return &stickerRepository{
		DB:     db,
		logger: logger,
	}
}

// ListStickers returns the owner's stickers in creation order. The result
// is never nil.
func (r *stickerRepository) ListStickers(ctx context.Context, ownerID string) ([]models.Sticker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStickersQuery(r.builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.ListStickers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*stickerRepository.ListStickers").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing stickers")
		return nil, r.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	stickers := make([]models.Sticker, 0, 16)
	for rows.Next() {
		sticker, scanErr := scanSticker(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*stickerRepository.ListStickers").Msg("failed to scan sticker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		stickers = append(stickers, sticker)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*stickerRepository.ListStickers").Msg("error occurred during rows iteration")
		return nil, r.wrapError(rowsErr, ErrScanningRows)
	}

	return stickers, nil
}

func (r *stickerRepository) GetSticker(ctx context.Context, id string) (models.Sticker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStickerQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.GetSticker").Msg("failed to build query")
		return models.Sticker{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sticker, err := scanSticker(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sticker{}, ErrStickerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.GetSticker").Str("sticker_id", id).Msg("failed to get sticker")
		return models.Sticker{}, r.wrapError(err, ErrExecutingQuery)
	}

	return sticker, nil
}

func (r *stickerRepository) CreateSticker(ctx context.Context, sticker models.Sticker) (models.Sticker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateStickerQuery(r.builder(), sticker)
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.CreateSticker").Msg("failed to build query")
		return models.Sticker{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSticker(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*stickerRepository.CreateSticker").
			Str("owner_id", sticker.OwnerID).
			Msg("failed to insert sticker")
		return models.Sticker{}, r.wrapError(err, ErrExecutingQuery)
	}

	return created, nil
}

func (r *stickerRepository) UpdateSticker(ctx context.Context, id, ownerID string, update models.StickerUpdate, updatedAt time.Time) (models.Sticker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStickerQuery(r.builder(), id, ownerID, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.UpdateSticker").Msg("failed to build query")
		return models.Sticker{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSticker(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sticker{}, ErrStickerNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*stickerRepository.UpdateSticker").
			Str("sticker_id", id).
			Msg("failed to update sticker")
		return models.Sticker{}, r.wrapError(err, ErrExecutingQuery)
	}

	return updated, nil
}

func (r *stickerRepository) DeleteSticker(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStickerQuery(r.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.DeleteSticker").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*stickerRepository.DeleteSticker").Str("sticker_id", id).Msg("failed to delete sticker")
		return r.wrapError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.wrapError(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrStickerNotFound
	}

	return nil
}
