package identity_test

import (
	"testing"

	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/domain"
	"github.com/nfrund/signon/internal/identity"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentityService(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("memory", func(t *testing.T) {
		svc, err := identity.NewIdentityService(&config.Config{IdentityProvider: "memory"}, fs)
		require.NoError(t, err)
		assert.IsType(t, &identity.MemoryService{}, svc)
	})

	t.Run("firebase", func(t *testing.T) {
		svc, err := identity.NewIdentityService(&config.Config{
			IdentityProvider: "firebase",
			Firebase:         config.Firebase{APIKey: "k"},
		}, fs)
		require.NoError(t, err)
		assert.IsType(t, &identity.FirebaseService{}, svc)
	})

	t.Run("firebase without key", func(t *testing.T) {
		_, err := identity.NewIdentityService(&config.Config{IdentityProvider: "firebase"}, fs)
		assert.Error(t, err)
	})

	t.Run("surreal", func(t *testing.T) {
		svc, err := identity.NewIdentityService(&config.Config{
			IdentityProvider: "surreal",
			Surreal:          config.Surreal{URL: "ws://localhost:8000", NS: "app", DB: "app", Access: "account"},
		}, fs)
		require.NoError(t, err)
		assert.IsType(t, &identity.SurrealService{}, svc)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := identity.NewIdentityService(&config.Config{IdentityProvider: "ldap"}, fs)
		assert.ErrorIs(t, err, domain.ErrUnknownProvider)
	})
}
