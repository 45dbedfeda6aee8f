package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nfrund/signon/internal/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	accountFlags.email, accountFlags.password, accountFlags.name, accountFlags.phone = "", "", "", ""
	err := rootCmd.Execute()
	return out.String(), err
}

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("IDENTITY_PROVIDER", "memory")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("MEMORY_STORE_PATH", filepath.Join(t.TempDir(), "accounts.json"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "signon v"+version+"\n", out)
}

func TestSignupThenSignin(t *testing.T) {
	setTestEnv(t)

	out, err := execute(t, "signup", "--email", "a@x.com", "--password", "secret", "--name", "Amy", "--phone", "555-1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Account created successfully\n"))

	// The account was persisted by the first invocation.
	out, err = execute(t, "signin", "--email", "a@x.com", "--password", "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Login successful\n"))

	_, err = execute(t, "signin", "--email", "a@x.com", "--password", "nope!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error: INVALID_LOGIN_CREDENTIALS")
}

func TestSignin_MissingFields(t *testing.T) {
	setTestEnv(t)

	_, err := execute(t, "signin", "--email", "a@x.com")
	require.Error(t, err)
	assert.Equal(t, submit.ValidationMessage, err.Error())
}
