package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nfrund/signon/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMessageOf(t *testing.T) {
	t.Run("auth error yields provider message", func(t *testing.T) {
		err := fmt.Errorf("sign in: %w", &domain.AuthError{Message: "INVALID_LOGIN_CREDENTIALS", Code: 400})
		assert.Equal(t, "INVALID_LOGIN_CREDENTIALS", domain.MessageOf(err))
	})

	t.Run("plain error yields its text", func(t *testing.T) {
		assert.Equal(t, "boom", domain.MessageOf(errors.New("boom")))
	})
}

func TestNewAuthError_Unwraps(t *testing.T) {
	err := domain.NewAuthError(context.Canceled)
	assert.Equal(t, "context canceled", err.Message)
	assert.ErrorIs(t, err, context.Canceled)
}
