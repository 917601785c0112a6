package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/models"
)

type backfillService struct {
	userRepository store.UserRepository
	bookRepository store.BookRepository

	logger *logger.Logger
}

func NewBackfillService(userRepository store.UserRepository, bookRepository store.BookRepository, logger *logger.Logger) BackfillService {
	return &backfillService{
		userRepository: userRepository,
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (b *backfillService) AssignOrphanBooks(ctx context.Context, ownerUsername string, dryRun bool) (models.BackfillReport, error) {
	owner, err := b.findOwner(ctx, strings.TrimSpace(ownerUsername))
	if err != nil {
		return models.BackfillReport{}, err
	}

	report := models.BackfillReport{Owner: owner.Summary(), DryRun: dryRun}

	report.Orphans, err = b.bookRepository.CountOrphanBooks(ctx)
	if err != nil {
		return models.BackfillReport{}, fmt.Errorf("counting orphan books failed: %w", err)
	}

	b.logger.Info().
		Str("func", "*backfillService.AssignOrphanBooks").
		Str("owner", owner.Username).
		Int64("orphans", report.Orphans).
		Bool("dry_run", dryRun).
		Msg("orphan books found")

	if dryRun || report.Orphans == 0 {
		return report, nil
	}

	report.Assigned, err = b.bookRepository.AssignOrphanBooks(ctx, owner.ID)
	if err != nil {
		return models.BackfillReport{}, fmt.Errorf("assigning orphan books failed: %w", err)
	}

	return report, nil
}

func (b *backfillService) findOwner(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		user, err := b.userRepository.FindOldestUser(ctx)
		if err != nil {
			return models.User{}, fmt.Errorf("no user to own orphan books: %w", err)
		}
		return user, nil
	}

	user, err := b.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("owner %q not found: %w", username, err)
	}
	return user, nil
}
