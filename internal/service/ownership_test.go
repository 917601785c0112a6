package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storybook/models"
)

type record struct {
	id    string
	owner string
}

func (r record) Owner() string { return r.owner }

func TestOwnedMutation(t *testing.T) {
	errMissing := errors.New("missing")
	records := map[string]record{
		"mine":   {id: "mine", owner: luna.ID},
		"theirs": {id: "theirs", owner: sol.ID},
		"orphan": {id: "orphan"},
	}
	load := func(_ context.Context, id string) (record, error) {
		r, ok := records[id]
		if !ok {
			return record{}, errMissing
		}
		return r, nil
	}

	tests := []struct {
		name        string
		id          string
		identity    models.Identity
		wantErr     error
		wantMutated bool
	}{
		{name: "owner mutates", id: "mine", identity: luna, wantMutated: true},
		{name: "other user is forbidden", id: "theirs", identity: luna, wantErr: ErrForbidden},
		{name: "orphan is forbidden", id: "orphan", identity: luna, wantErr: ErrForbidden},
		{name: "empty identity never matches an orphan", id: "orphan", identity: models.Identity{}, wantErr: ErrForbidden},
		{name: "load error passes through", id: "ghost", identity: luna, wantErr: errMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := false
			got, err := ownedMutation(context.Background(), tt.identity, tt.id, load,
				func(_ context.Context, r record) (string, error) {
					mutated = true
					return r.id, nil
				})

			assert.Equal(t, tt.wantMutated, mutated)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got)
		})
	}
}
