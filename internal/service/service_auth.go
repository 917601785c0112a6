package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/store"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/internal/validators"
	"github.com/MKhiriev/go-storybook/models"
)

// idGenerator hands out identifiers for new records.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		now:              utcNow,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a new user account and signs a token for it.
//
// The username is trimmed before validation. Returns:
//   - a validation error if the credentials break the length rules;
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid credentials provided")
		return models.AuthResponse{}, err
	}

	passwordHash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Username:     credentials.Username,
		PasswordHash: passwordHash,
		CreatedAt:    a.now(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", credentials.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResponse(user)
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials
// so callers can't tell which check failed. Storage failures are returned
// wrapped.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Login").Str("username", username).Msg("unknown username")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("username", username).Msg("user search by username failed")
		return models.AuthResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, credentials.Password); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.authResponse(user)
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrNoToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func (a *authService) authResponse(user models.User) (models.AuthResponse, error) {
	summary := user.Summary()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, models.Identity(summary), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{Token: token.String(), User: summary}, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
