package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount must be positive, got %d", -5)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "amount must be positive, got -5", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestWrappedSentinels(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidCredentials, ErrUnauthorized)
	assert.ErrorIs(t, ErrDuplicateAccount, ErrAlreadyExists)
	assert.NotErrorIs(t, ErrUnknownAccount, ErrNotFound)
}
