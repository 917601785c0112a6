package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored row.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - connection loss or timeout → [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to insert user")

		if r.classify(err) == UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, r.wrapError(err, ErrExecutingQuery)
	}

	return created, nil
}

// FindUserByUsername retrieves the user with the given username.
// A missing user yields [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.builder(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Str("username", username).
			Msg("failed to find user")
		return models.User{}, r.wrapError(err, ErrExecutingQuery)
	}

	return user, nil
}

// FindOldestUser returns the earliest registered user, or [ErrUserNotFound]
// when there are no users.
func (r *userRepository) FindOldestUser(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindOldestUserQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindOldestUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindOldestUser").Msg("failed to find oldest user")
		return models.User{}, r.wrapError(err, ErrExecutingQuery)
	}

	return user, nil
}
