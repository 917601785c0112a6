package service

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/models"
)

var (
	fixedNow = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	luna = models.Identity{ID: "user-luna", Username: "luna"}
	sol  = models.Identity{ID: "user-sol", Username: "sol"}

	testAppConfig = config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "go-storybook-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: 4,
		Version:          "test",
	}
)

// sequenceIDs hands out "id-1", "id-2", ... in order.
type sequenceIDs struct {
	prefix string
	n      int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return s.prefix + "-" + strconv.Itoa(s.n)
}

func fixedClock() time.Time {
	return fixedNow
}

func ptr[T any](v T) *T { return &v }
