package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret1x"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashAndCheckPasswordMaxLength(t *testing.T) {
	// 128 chars is the longest secret the signup validator admits; bcrypt
	// itself only reads 72 bytes, but hashing must not fail.
	long := strings.Repeat("a", 127) + "b"
	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, long))
	assert.False(t, CheckPassword(hash, "z"+long[1:]))
}

func TestHashPasswordUsesRandomSalt(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "secret1"))
	assert.True(t, CheckPassword(second, "secret1"))
}
