package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigForTests(t *testing.T) {
	t.Run("defaults to the memory provider", func(t *testing.T) {
		cfg := ConfigForTests(t, nil)

		assert.Equal(t, "memory", cfg.GetIdentityProvider())
		assert.NotEmpty(t, cfg.GetSessionSecret())
		assert.Zero(t, cfg.GetRateLimit())
	})

	t.Run("overrides win", func(t *testing.T) {
		cfg := ConfigForTests(t, map[string]string{"AUTH_REDIRECT_URL": "https://app.example.com"})

		assert.Equal(t, "https://app.example.com", cfg.GetRedirectURL())
	})
}
