// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-storybook/models"
)

const (
	usersTable    = "users"
	booksTable    = "books"
	stickersTable = "stickers"
)

var (
	userColumns = []string{"id", "username", "password_hash", "created_at"}

	bookColumns = []string{
		"id", "title", "author", "pages", "category",
		"is_public", "owner_id", "created_at", "updated_at",
	}

	stickerColumns = []string{
		"id", "text", "emoji", "color", "x", "y", "rotation",
		"type", "size", "owner_id", "created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildFindOldestUserQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
}

// ── books ─────────────────────────────────────────────────────────────────────

// buildListBooksQuery selects either the owner's books (filter.OwnerID set)
// or public books, narrowed by category and a case-insensitive author
// substring. lower is the SQL function folding case on both sides.
func buildListBooksQuery(b sq.StatementBuilderType, filter models.BookFilter, lower string) (string, []any, error) {
	query := b.Select(bookColumns...).From(booksTable)

	if filter.OwnerID != "" {
		query = query.Where(sq.Eq{"owner_id": filter.OwnerID})
	} else {
		query = query.Where(sq.Eq{"is_public": true})
	}

	if filter.Category != "" && filter.Category != models.CategoryAll {
		query = query.Where(sq.Eq{"category": string(filter.Category)})
	}

	if filter.Author != "" {
		query = query.Where(sq.Expr(lower+`(author) LIKE `+lower+`(?) ESCAPE '\'`, likeContains(filter.Author)))
	}

	return query.OrderBy("updated_at DESC", "id DESC").ToSql()
}

func buildGetBookQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(bookColumns...).
		From(booksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateBookQuery(b sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return b.Insert(booksTable).
		Columns(bookColumns...).
		Values(
			book.ID, book.Title, book.Author, book.Pages, string(book.Category),
			book.IsPublic, nullableString(book.OwnerID), book.CreatedAt, book.UpdatedAt,
		).
		Suffix(returning(bookColumns)).
		ToSql()
}

func buildUpdateBookQuery(b sq.StatementBuilderType, id, ownerID string, update models.BookUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update(booksTable).Set("updated_at", updatedAt)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Author != nil {
		query = query.Set("author", *update.Author)
	}
	if update.Pages != nil {
		query = query.Set("pages", update.Pages)
	}
	if update.Category != nil {
		query = query.Set("category", string(*update.Category))
	}
	if update.IsPublic != nil {
		query = query.Set("is_public", *update.IsPublic)
	}

	return query.
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning(bookColumns)).
		ToSql()
}

func buildDeleteBookQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(booksTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

var orphanBooks = sq.Or{sq.Eq{"owner_id": nil}, sq.Eq{"owner_id": ""}}

func buildCountOrphanBooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(booksTable).
		Where(orphanBooks).
		ToSql()
}

func buildAssignOrphanBooksQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Update(booksTable).
		Set("owner_id", ownerID).
		Where(orphanBooks).
		ToSql()
}

// ── stickers ──────────────────────────────────────────────────────────────────

func buildListStickersQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select(stickerColumns...).
		From(stickersTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildGetStickerQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(stickerColumns...).
		From(stickersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreateStickerQuery(b sq.StatementBuilderType, s models.Sticker) (string, []any, error) {
	return b.Insert(stickersTable).
		Columns(stickerColumns...).
		Values(
			s.ID, s.Text, s.Emoji, s.Color, s.X, s.Y, s.Rotation,
			string(s.Type), s.Size, s.OwnerID, s.CreatedAt, s.UpdatedAt,
		).
		Suffix(returning(stickerColumns)).
		ToSql()
}

func buildUpdateStickerQuery(b sq.StatementBuilderType, id, ownerID string, update models.StickerUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update(stickersTable).Set("updated_at", updatedAt)

	if update.Text != nil {
		query = query.Set("text", *update.Text)
	}
	if update.Emoji != nil {
		query = query.Set("emoji", *update.Emoji)
	}
	if update.Color != nil {
		query = query.Set("color", *update.Color)
	}
	if update.X != nil {
		query = query.Set("x", *update.X)
	}
	if update.Y != nil {
		query = query.Set("y", *update.Y)
	}
	if update.Rotation != nil {
		query = query.Set("rotation", *update.Rotation)
	}
	if update.Type != nil {
		query = query.Set("type", string(*update.Type))
	}
	if update.Size != nil {
		query = query.Set("size", *update.Size)
	}

	return query.
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning(stickerColumns)).
		ToSql()
}

func buildDeleteStickerQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(stickersTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// ── helpers ───────────────────────────────────────────────────────────────────

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains turns s into a LIKE pattern matching s anywhere, with the
// LIKE wildcards in s escaped by a backslash.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
