// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-storybook/internal/adapter"
)

var (
	errTitleRequired = errors.New("title is required")
	errAuthorMissing = errors.New("author is required")
	errPagesRequired = errors.New("at least one page is required")
	errNothingToSave = errors.New("nothing changed")
)

// humanizeError turns adapter errors into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired or invalid: press L to log in again"
	case errors.Is(err, adapter.ErrForbidden):
		return "That belongs to someone else"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many attempts, wait a moment"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
