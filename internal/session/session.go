// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session persists the terminal client's login between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-storybook/models"
)

// ErrNoSession is returned by [Store.Load] when nobody is logged in.
var ErrNoSession = errors.New("no saved session")

// Session is what the client remembers between runs.
type Session struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
	Theme string             `json:"theme,omitempty"`
}

// LoggedIn reports whether the session carries a token.
func (s Session) LoggedIn() bool {
	return strings.TrimSpace(s.Token) != ""
}

// Store reads and writes a [Session] as a JSON file readable only by the
// current user.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved session. A missing file, or one without a token,
// yields ErrNoSession; the theme of a logged-out session is still returned.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err = json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("decode session file: %w", err)
	}
	if !sess.LoggedIn() {
		return sess, ErrNoSession
	}

	return sess, nil
}

// Save replaces the session file. The write goes through a temporary file
// so a crash never leaves a truncated session behind.
func (s *Store) Save(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

// Clear logs out while keeping the chosen theme.
func (s *Store) Clear() error {
	// an unreadable file is simply overwritten
	sess, _ := s.Load()
	return s.Save(Session{Theme: sess.Theme})
}
