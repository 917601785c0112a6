// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storybook/models"
)

// owned is implemented by every record that belongs to a single user.
type owned interface {
	Owner() string
}

// ownedMutation loads the record id, makes sure identity owns it and only
// then runs mutate on it.
//
// Load errors (NotFound in particular) are returned as is. A record with a
// different owner, or with no owner at all, yields [ErrForbidden] and mutate
// is never called.
func ownedMutation[T owned, R any](
	ctx context.Context,
	identity models.Identity,
	id string,
	load func(ctx context.Context, id string) (T, error),
	mutate func(ctx context.Context, record T) (R, error),
) (R, error) {
	var zero R

	record, err := load(ctx, id)
	if err != nil {
		return zero, err
	}

	if owner := record.Owner(); owner == "" || owner != identity.ID {
		return zero, fmt.Errorf("%w: record %s", ErrForbidden, id)
	}

	return mutate(ctx, record)
}
