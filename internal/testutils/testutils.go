package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/signon/internal/config"
)

// TestSessionSecret is the cookie secret used when .env.test does not set one.
const TestSessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests builds a config.Provider for tests. Values come from, in
// increasing priority, built-in test defaults, the project's .env.test (if
// any) and overrides. The in-memory identity provider is the default.
func ConfigForTests(t *testing.T, overrides map[string]string) config.Provider {
	t.Helper()

	defaults := map[string]string{
		"SESSION_SECRET":    TestSessionSecret,
		"IDENTITY_PROVIDER": "memory",
		"MEMORY_STORE_PATH": "",
		"RATE_LIMIT":        "0",
		"LOG_LEVEL":         "error",
	}
	for key, value := range defaults {
		t.Setenv(key, value)
	}

	if root, ok := projectRoot(); ok {
		env, err := godotenv.Read(filepath.Join(root, ".env.test"))
		if err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}

	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}

// projectRoot walks up from the working directory to the directory holding go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
