package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("testpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "testpassword", hashed)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)
}

func TestCheckPasswordHash(t *testing.T) {
	hashed, _ := HashPassword("testpassword")

	assert.True(t, CheckPasswordHash("testpassword", hashed))
	assert.False(t, CheckPasswordHash("wrongpassword", hashed))
	assert.False(t, CheckPasswordHash("testpassword", "not-a-hash"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("test@example.com"))
	assert.True(t, IsEmail("another.test@sub.domain.co.uk"))

	assert.False(t, IsEmail("invalid-email"))
	assert.False(t, IsEmail("@example.com"))
	assert.False(t, IsEmail("Bob <bob@example.com>"))
	assert.False(t, IsEmail(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}
