// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Category classifies a book. The set is closed: see [Categories].
type Category string

const (
	CategoryStory     Category = "Story"
	CategoryPoem      Category = "Poem"
	CategoryNovel     Category = "Novel"
	CategoryJournal   Category = "Journal"
	CategoryAdventure Category = "Adventure"
	CategoryFantasy   Category = "Fantasy"
	CategoryRomance   Category = "Romance"
	CategoryOther     Category = "Other"

	// CategoryAll is the list filter sentinel meaning "any category".
	// It is never stored.
	CategoryAll Category = "All"
)

// Categories lists every storable category in display order.
var Categories = []Category{
	CategoryStory,
	CategoryPoem,
	CategoryNovel,
	CategoryJournal,
	CategoryAdventure,
	CategoryFantasy,
	CategoryRomance,
	CategoryOther,
}

// Valid reports whether c is one of [Categories].
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Book is a multi-page story owned by a single user.
//
// OwnerID is empty only for legacy orphan records created before ownership
// was enforced; such books can be read (if public) but never mutated.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Pages     Pages     `json:"pages"`
	Category  Category  `json:"category"`
	IsPublic  bool      `json:"isPublic"`
	OwnerID   string    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Owner implements the ownership contract used by the service layer.
func (b Book) Owner() string {
	return b.OwnerID
}

// Pages is the ordered list of text blocks of a book. It is persisted as a
// JSON array in a single text column.
type Pages []string

// Value implements [driver.Valuer].
func (p Pages) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(p))
	if err != nil {
		return nil, fmt.Errorf("error encoding pages: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (p *Pages) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = Pages{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported pages column type %T", src)
	}

	var pages []string
	if err := json.Unmarshal(raw, &pages); err != nil {
		return fmt.Errorf("error decoding pages: %w", err)
	}
	if pages == nil {
		pages = []string{}
	}
	*p = pages
	return nil
}

// NewBook is the body of a book creation request. Owner is deliberately
// absent: it is always taken from the caller's identity.
type NewBook struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Author   string   `json:"author" validate:"required,max=100"`
	Pages    Pages    `json:"pages" validate:"required,min=1"`
	Category Category `json:"category" validate:"omitempty,oneof=Story Poem Novel Journal Adventure Fantasy Romance Other"`
	IsPublic *bool    `json:"isPublic"`
}

// BookUpdate is a partial book update: nil fields are left unchanged.
type BookUpdate struct {
	Title    *string   `json:"title" validate:"omitnil,min=1,max=200"`
	Author   *string   `json:"author" validate:"omitnil,min=1,max=100"`
	Pages    Pages     `json:"pages" validate:"omitnil,min=1"`
	Category *Category `json:"category" validate:"omitnil,oneof=Story Poem Novel Journal Adventure Fantasy Romance Other"`
	IsPublic *bool     `json:"isPublic"`
}

// Empty reports whether the update carries no field at all.
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.Pages == nil && u.Category == nil && u.IsPublic == nil
}

// BookFilter narrows a book listing.
//
// When OwnerID is set the listing is scoped to that owner ("mine" mode) and
// visibility is not considered; otherwise only public books are returned.
type BookFilter struct {
	OwnerID  string
	Category Category
	Author   string
}
