package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/domain"
)

// FirebaseService talks to the Identity Toolkit REST API behind Firebase Authentication.
type FirebaseService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewFirebaseService creates a FirebaseService. A nil client means http.DefaultClient.
func NewFirebaseService(cfg config.Firebase, client *http.Client) *FirebaseService {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://identitytoolkit.googleapis.com/v1"
	}
	return &FirebaseService{
		apiKey:   cfg.APIKey,
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   client,
	}
}

type signUpPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DisplayName       string `json:"displayName,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type tokenResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateAccount registers a new email/password account.
func (s *FirebaseService) CreateAccount(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	return s.call(ctx, "accounts:signUp", signUpPayload{
		Email:             creds.Identifier,
		Password:          creds.Secret,
		DisplayName:       creds.Profile.Name,
		ReturnSecureToken: true,
	})
}

// SignIn verifies an email/password pair.
func (s *FirebaseService) SignIn(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	return s.call(ctx, "accounts:signInWithPassword", signInPayload{
		Email:             creds.Identifier,
		Password:          creds.Secret,
		ReturnSecureToken: true,
	})
}

func (s *FirebaseService) call(ctx context.Context, method string, payload any) (domain.Token, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	target := s.endpoint + "/" + method + "?key=" + url.QueryEscape(s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// Network failures are reported to the user like any other service error.
		return "", domain.NewAuthError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return "", &domain.AuthError{Message: http.StatusText(resp.StatusCode), Code: resp.StatusCode}
		}
		return "", &domain.AuthError{Message: errResp.Error.Message, Code: resp.StatusCode}
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", domain.NewAuthError(fmt.Errorf("failed to decode %s response: %w", method, err))
	}

	slog.DebugContext(ctx, "identity toolkit call succeeded", "method", method, "local_id", tok.LocalID)
	return domain.Token(tok.IDToken), nil
}
