package identity

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/domain"
	"github.com/spf13/afero"
)

// NewIdentityService creates and returns an identity service based on the configuration.
// fs backs the optional persistence of the memory provider.
func NewIdentityService(cfg config.Provider, fs afero.Fs) (domain.IdentityService, error) {
	switch cfg.GetIdentityProvider() {
	case "memory":
		return NewMemoryService(fs, cfg.GetMemoryStorePath())
	case "firebase":
		fb := cfg.GetFirebase()
		if fb.APIKey == "" {
			return nil, fmt.Errorf("identity provider is 'firebase' but FIREBASE_API_KEY is not set")
		}
		// The transport timeout only bounds a stuck connection; the request
		// context is what normally ends a call.
		client := &http.Client{Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 60 * time.Second,
		}}
		return NewFirebaseService(fb, client), nil
	case "surreal":
		return NewSurrealService(cfg.GetSurreal()), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, cfg.GetIdentityProvider())
	}
}
