package config_test

import (
	"testing"

	"github.com/nfrund/signon/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")

		cfg, err := config.Parse()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetAddr())
		assert.Equal(t, "http://localhost:8501", cfg.GetRedirectURL())
		assert.Equal(t, "memory", cfg.GetIdentityProvider())
		assert.Equal(t, "https://identitytoolkit.googleapis.com/v1", cfg.GetFirebase().Endpoint)
		assert.Equal(t, "account", cfg.GetSurreal().Access)
		assert.Equal(t, 10.0, cfg.GetRateLimit())
	})

	t.Run("requires a session secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")

		_, err := config.Parse()
		assert.Error(t, err)
	})

	t.Run("reads the firebase block", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("IDENTITY_PROVIDER", "firebase")
		t.Setenv("FIREBASE_API_KEY", "key-123")
		t.Setenv("FIREBASE_PROJECT_ID", "login-db")
		t.Setenv("AUTH_REDIRECT_URL", "https://app.example.com")

		cfg, err := config.Parse()
		require.NoError(t, err)

		assert.Equal(t, "key-123", cfg.GetFirebase().APIKey)
		assert.Equal(t, "login-db", cfg.GetFirebase().ProjectID)
		assert.Equal(t, "https://app.example.com", cfg.GetRedirectURL())
	})

	t.Run("firebase without api key is rejected", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("IDENTITY_PROVIDER", "firebase")
		t.Setenv("FIREBASE_API_KEY", "")

		_, err := config.Parse()
		assert.ErrorContains(t, err, "FIREBASE_API_KEY")
	})

	t.Run("surreal requires connection settings", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("IDENTITY_PROVIDER", "surreal")
		t.Setenv("SURREAL_URL", "ws://localhost:8000")
		t.Setenv("SURREAL_NS", "")

		_, err := config.Parse()
		assert.ErrorContains(t, err, "SURREAL_NS")
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("IDENTITY_PROVIDER", "ldap")

		_, err := config.Parse()
		assert.ErrorContains(t, err, "unknown identity provider")
	})
}
