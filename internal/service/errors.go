package service

import (
	"errors"

	"github.com/MKhiriev/go-storybook/internal/validators"
)

var (
	// ErrValidation is matched by every rejected input, including the
	// field-level errors returned by the validator.
	ErrValidation = validators.ErrValidation

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the caller does not own the record it
	// tries to change. Ownerless records are forbidden to everybody.
	ErrForbidden = errors.New("not the owner of the resource")

	ErrNoToken                 = errors.New("no token provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
