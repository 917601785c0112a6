// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StickerType distinguishes emoji stickers from written notes.
type StickerType string

const (
	StickerTypeSticker StickerType = "sticker"
	StickerTypeNote    StickerType = "note"
)

// Sticker defaults applied on creation when the caller omits a value.
const (
	DefaultStickerColor = "bg-pink-100"
	DefaultStickerSize  = 1.0
)

// Sticker is a note placed on the owner's private desk.
// Stickers are never visible to anyone but their owner.
type Sticker struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Emoji     string      `json:"emoji"`
	Color     string      `json:"color"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Rotation  float64     `json:"rotation"`
	Type      StickerType `json:"type"`
	Size      float64     `json:"size"`
	OwnerID   string      `json:"owner"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Owner implements the ownership contract used by the service layer.
func (s Sticker) Owner() string {
	return s.OwnerID
}

// NewSticker is the body of a sticker creation request. X and Y are
// pointers because zero is a legitimate position.
type NewSticker struct {
	Text     string      `json:"text" validate:"required,max=500"`
	Emoji    string      `json:"emoji" validate:"max=32"`
	Color    string      `json:"color" validate:"max=64"`
	X        *float64    `json:"x" validate:"required"`
	Y        *float64    `json:"y" validate:"required"`
	Rotation *float64    `json:"rotation"`
	Type     StickerType `json:"type" validate:"omitempty,oneof=sticker note"`
	Size     *float64    `json:"size" validate:"omitnil,gte=0.5,lte=2.5"`
}

// StickerUpdate is a partial sticker update: nil fields are left unchanged.
type StickerUpdate struct {
	Text     *string      `json:"text" validate:"omitnil,min=1,max=500"`
	Emoji    *string      `json:"emoji" validate:"omitnil,max=32"`
	Color    *string      `json:"color" validate:"omitnil,min=1,max=64"`
	X        *float64     `json:"x"`
	Y        *float64     `json:"y"`
	Rotation *float64     `json:"rotation"`
	Type     *StickerType `json:"type" validate:"omitnil,oneof=sticker note"`
	Size     *float64     `json:"size" validate:"omitnil,gte=0.5,lte=2.5"`
}

// Empty reports whether the update carries no field at all.
func (u StickerUpdate) Empty() bool {
	return u.Text == nil && u.Emoji == nil && u.Color == nil && u.X == nil &&
		u.Y == nil && u.Rotation == nil && u.Type == nil && u.Size == nil
}
