package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/models"
)

var stickerColumnsRow = []string{
	"id", "text", "emoji", "color", "x", "y", "rotation",
	"type", "size", "owner_id", "created_at", "updated_at",
}

func newStickerRepo(t *testing.T) (StickerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewStickerRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestStickerRepository_ListStickers(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	repo, mock := newStickerRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM stickers WHERE owner_id = $1 ORDER BY created_at ASC, id ASC")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(stickerColumnsRow).
			AddRow("s-1", "hi", "🌙", "bg-pink-100", 10.0, 20.0, 0.0, "sticker", 1.0, "u-1", now, now).
			AddRow("s-2", "todo", "", "bg-yellow-100", 5.5, 6.5, -3.0, "note", 2.0, "u-1", now, now))

	stickers, err := repo.ListStickers(testContext(), "u-1")
	require.NoError(t, err)
	require.Len(t, stickers, 2)

	assert.Equal(t, models.Sticker{
		ID: "s-1", Text: "hi", Emoji: "🌙", Color: "bg-pink-100", X: 10, Y: 20,
		Type: models.StickerTypeSticker, Size: 1, OwnerID: "u-1", CreatedAt: now, UpdatedAt: now,
	}, stickers[0])
	assert.Equal(t, models.StickerTypeNote, stickers[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStickerRepository_GetSticker_NotFound(t *testing.T) {
	repo, mock := newStickerRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM stickers WHERE id = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(stickerColumnsRow))

	_, err := repo.GetSticker(testContext(), "nope")
	assert.ErrorIs(t, err, ErrStickerNotFound)
}

func TestStickerRepository_CreateSticker(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sticker := models.Sticker{
		ID: "s-1", Text: "hi", Color: "bg-pink-100", X: 1, Y: 2,
		Type: models.StickerTypeSticker, Size: 1, OwnerID: "u-1", CreatedAt: now, UpdatedAt: now,
	}

	repo, mock := newStickerRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stickers (id,text,emoji,color,x,y,rotation,type,size,owner_id,created_at,updated_at)")).
		WithArgs("s-1", "hi", "", "bg-pink-100", 1.0, 2.0, 0.0, "sticker", 1.0, "u-1", now, now).
		WillReturnRows(sqlmock.NewRows(stickerColumnsRow).
			AddRow("s-1", "hi", "", "bg-pink-100", 1.0, 2.0, 0.0, "sticker", 1.0, "u-1", now, now))

	created, err := repo.CreateSticker(testContext(), sticker)
	require.NoError(t, err)
	assert.Equal(t, sticker, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStickerRepository_UpdateSticker(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	x, y := 50.0, 60.0

	repo, mock := newStickerRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE stickers SET updated_at = $1, x = $2, y = $3 WHERE id = $4 AND owner_id = $5")).
		WithArgs(now, 50.0, 60.0, "s-1", "u-1").
		WillReturnRows(sqlmock.NewRows(stickerColumnsRow).
			AddRow("s-1", "hi", "", "bg-pink-100", 50.0, 60.0, 0.0, "sticker", 1.0, "u-1", now, now))

	updated, err := repo.UpdateSticker(testContext(), "s-1", "u-1", models.StickerUpdate{X: &x, Y: &y}, now)
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.X)
	assert.Equal(t, 60.0, updated.Y)
	assert.Equal(t, "hi", updated.Text)
}

func TestStickerRepository_DeleteSticker(t *testing.T) {
	repo, mock := newStickerRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stickers WHERE id = $1 AND owner_id = $2")).
		WithArgs("s-1", "u-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSticker(testContext(), "s-1", "u-2")
	assert.ErrorIs(t, err, ErrStickerNotFound)
}
