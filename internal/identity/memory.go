package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/signon/internal/domain"
	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"
)

// Messages returned by the memory provider. They use the hosted service's wording
// so the UI behaves the same against either backend.
const (
	MsgEmailExists        = "EMAIL_EXISTS"
	MsgInvalidCredentials = "INVALID_LOGIN_CREDENTIALS"
	MsgWeakPassword       = "WEAK_PASSWORD : Password should be at least 6 characters"
	MsgInvalidEmail       = "INVALID_EMAIL"
)

const minSecretLength = 6

type memoryAccount struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"passwordHash"`
	Profile      domain.Profile `json:"profile"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// MemoryService is an in-process identity service for development and tests.
// When a store path is set, accounts are written to it as JSON after every change.
type MemoryService struct {
	mu       sync.RWMutex
	accounts map[string]*memoryAccount
	fs       afero.Fs
	path     string
}

// NewMemoryService creates a MemoryService, loading existing accounts from path when
// it is set. A nil fs means the OS filesystem.
func NewMemoryService(fs afero.Fs, path string) (*MemoryService, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &MemoryService{
		accounts: make(map[string]*memoryAccount),
		fs:       fs,
		path:     path,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateAccount registers creds.Identifier if it is not already taken.
func (s *MemoryService) CreateAccount(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewAuthError(err)
	}
	if len(creds.Secret) < minSecretLength {
		return "", &domain.AuthError{Message: MsgWeakPassword, Code: http.StatusBadRequest}
	}

	key := normalize(creds.Identifier)
	if key == "" {
		return "", &domain.AuthError{Message: MsgInvalidEmail, Code: http.StatusBadRequest}
	}
	if s.exists(key) {
		return "", &domain.AuthError{Message: MsgEmailExists, Code: http.StatusBadRequest}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another submission may have registered the same identifier while hashing.
	if _, ok := s.accounts[key]; ok {
		return "", &domain.AuthError{Message: MsgEmailExists, Code: http.StatusBadRequest}
	}
	acc := &memoryAccount{
		ID:           uuid.NewString(),
		Email:        key,
		PasswordHash: string(hash),
		Profile:      creds.Profile,
		CreatedAt:    time.Now().UTC(),
	}
	s.accounts[key] = acc
	if err := s.saveLocked(); err != nil {
		delete(s.accounts, key)
		return "", err
	}

	slog.InfoContext(ctx, "Account created", "account_id", acc.ID)
	return newToken(), nil
}

// SignIn checks creds against the stored hash.
func (s *MemoryService) SignIn(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewAuthError(err)
	}

	key := normalize(creds.Identifier)
	if key == "" {
		return "", &domain.AuthError{Message: MsgInvalidEmail, Code: http.StatusBadRequest}
	}

	s.mu.RLock()
	acc, ok := s.accounts[key]
	s.mu.RUnlock()
	if !ok {
		return "", &domain.AuthError{Message: MsgInvalidCredentials, Code: http.StatusBadRequest}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(creds.Secret)); err != nil {
		return "", &domain.AuthError{Message: MsgInvalidCredentials, Code: http.StatusBadRequest}
	}
	return newToken(), nil
}

// Len returns the number of registered accounts.
func (s *MemoryService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

func (s *MemoryService) exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[key]
	return ok
}

func (s *MemoryService) load() error {
	if s.path == "" {
		return nil
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read account store: %w", err)
	}

	var accounts []*memoryAccount
	if err := json.Unmarshal(data, &accounts); err != nil {
		return fmt.Errorf("failed to decode account store %s: %w", s.path, err)
	}
	for _, acc := range accounts {
		s.accounts[acc.Email] = acc
	}
	return nil
}

// saveLocked must be called with mu held.
func (s *MemoryService) saveLocked() error {
	if s.path == "" {
		return nil
	}
	accounts := make([]*memoryAccount, 0, len(s.accounts))
	for _, acc := range s.accounts {
		accounts = append(accounts, acc)
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode account store: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create account store directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write account store: %w", err)
	}
	return nil
}

func normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

func newToken() domain.Token {
	return domain.Token(uuid.NewString())
}
