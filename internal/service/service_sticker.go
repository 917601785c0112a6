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

type stickerService struct {
	stickerRepository store.StickerRepository

	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewStickerService(stickerRepository store.StickerRepository, validator validators.Validator, logger *logger.Logger) StickerService {
	return &stickerService{
		stickerRepository: stickerRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		now:               utcNow,
		logger:            logger,
	}
}

func (s *stickerService) ListStickers(ctx context.Context, identity models.Identity) ([]models.Sticker, error) {
	stickers, err := s.stickerRepository.ListStickers(ctx, identity.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stickerService.ListStickers").Msg("listing stickers failed")
		return nil, fmt.Errorf("listing stickers failed: %w", err)
	}

	return stickers, nil
}

// CreateSticker places a new sticker on the desk of identity, filling in
// the default color, type, size and rotation.
func (s *stickerService) CreateSticker(ctx context.Context, identity models.Identity, newSticker models.NewSticker) (models.Sticker, error) {
	newSticker.Text = strings.TrimSpace(newSticker.Text)
	if err := s.validator.Validate(ctx, newSticker); err != nil {
		return models.Sticker{}, err
	}

	now := s.now()
	sticker := models.Sticker{
		ID:        s.ids.Generate(),
		Text:      newSticker.Text,
		Emoji:     newSticker.Emoji,
		Color:     newSticker.Color,
		X:         *newSticker.X,
		Y:         *newSticker.Y,
		Type:      newSticker.Type,
		Size:      models.DefaultStickerSize,
		OwnerID:   identity.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if sticker.Color == "" {
		sticker.Color = models.DefaultStickerColor
	}
	if sticker.Type == "" {
		sticker.Type = models.StickerTypeSticker
	}
	if newSticker.Rotation != nil {
		sticker.Rotation = *newSticker.Rotation
	}
	if newSticker.Size != nil {
		sticker.Size = *newSticker.Size
	}

	created, err := s.stickerRepository.CreateSticker(ctx, sticker)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stickerService.CreateSticker").Str("owner", identity.ID).Msg("sticker creation failed")
		return models.Sticker{}, fmt.Errorf("sticker creation failed: %w", err)
	}

	return created, nil
}

// UpdateSticker applies the supplied fields of update to a sticker owned
// by identity. Dragging sends only x and y. The body is validated only
// after ownership is established.
func (s *stickerService) UpdateSticker(ctx context.Context, identity models.Identity, id string, update models.StickerUpdate) (models.Sticker, error) {
	trimPtr(update.Text)

	sticker, err := ownedMutation(ctx, identity, id, s.stickerRepository.GetSticker,
		func(ctx context.Context, sticker models.Sticker) (models.Sticker, error) {
			if err := s.validator.Validate(ctx, update); err != nil {
				return models.Sticker{}, err
			}
			if update.Empty() {
				return sticker, nil
			}
			return s.stickerRepository.UpdateSticker(ctx, sticker.ID, identity.ID, update, s.now())
		})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stickerService.UpdateSticker").Str("sticker_id", id).Msg("sticker update failed")
		return models.Sticker{}, fmt.Errorf("sticker update failed: %w", err)
	}

	return sticker, nil
}

func (s *stickerService) DeleteSticker(ctx context.Context, identity models.Identity, id string) error {
	_, err := ownedMutation(ctx, identity, id, s.stickerRepository.GetSticker,
		func(ctx context.Context, sticker models.Sticker) (struct{}, error) {
			return struct{}{}, s.stickerRepository.DeleteSticker(ctx, sticker.ID, identity.ID)
		})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stickerService.DeleteSticker").Str("sticker_id", id).Msg("sticker deletion failed")
		return fmt.Errorf("sticker deletion failed: %w", err)
	}

	return nil
}
