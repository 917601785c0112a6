// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	hash1, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	hash2, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash1)
	assert.NotEqual(t, hash1, hash2, "each hash must use its own salt")
	assert.NoError(t, ComparePassword(hash1, "pw1"))
	assert.NoError(t, ComparePassword(hash2, "pw1"))
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.ErrorIs(t, ComparePassword(hash, "pw2"), ErrPasswordMismatch)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 100), bcrypt.MinCost)
	assert.Error(t, err)
}
