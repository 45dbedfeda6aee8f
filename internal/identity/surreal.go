package identity

import (
	"context"
	"fmt"

	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealService uses SurrealDB record access (DEFINE ACCESS ... TYPE RECORD) as the
// identity service. The access definition owns the SIGNUP and SIGNIN logic; this
// service only forwards the submitted values.
type SurrealService struct {
	cfg     config.Surreal
	connect func(ctx context.Context) (*surrealdb.DB, error)
}

// NewSurrealService creates a SurrealService for the configured endpoint.
func NewSurrealService(cfg config.Surreal) *SurrealService {
	return &SurrealService{
		cfg: cfg,
		connect: func(ctx context.Context) (*surrealdb.DB, error) {
			return surrealdb.FromEndpointURLString(ctx, cfg.URL)
		},
	}
}

// CreateAccount runs the access method's SIGNUP clause.
func (s *SurrealService) CreateAccount(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	params := s.params(creds)
	params["name"] = creds.Profile.Name
	params["phone"] = creds.Profile.Phone

	return s.withConn(ctx, func(db *surrealdb.DB) (string, error) {
		return db.SignUp(ctx, params)
	})
}

// SignIn runs the access method's SIGNIN clause.
func (s *SurrealService) SignIn(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	params := s.params(creds)
	return s.withConn(ctx, func(db *surrealdb.DB) (string, error) {
		return db.SignIn(ctx, params)
	})
}

func (s *SurrealService) params(creds domain.Credentials) map[string]any {
	return map[string]any{
		"ns":       s.cfg.NS,
		"db":       s.cfg.DB,
		"ac":       s.cfg.Access,
		"email":    creds.Identifier,
		"password": creds.Secret,
	}
}

// withConn opens a connection for a single call. Signing in changes the auth state
// of a connection, so connections are never shared between submissions.
func (s *SurrealService) withConn(ctx context.Context, fn func(db *surrealdb.DB) (string, error)) (domain.Token, error) {
	db, err := s.connect(ctx)
	if err != nil {
		return "", domain.NewAuthError(fmt.Errorf("failed to connect to surrealdb: %w", err))
	}
	defer db.Close(context.Background())

	token, err := fn(db)
	if err != nil {
		return "", domain.NewAuthError(err)
	}
	return domain.Token(token), nil
}
