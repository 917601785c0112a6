package utils

import "github.com/google/uuid"

// UUIDGenerator issues record identifiers. Version 7 ids sort by creation
// time, which keeps the (createdAt, id) ordering of stickers stable.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 id if
// the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
