package domain

import "context"

// IdentityService defines the contract for the external identity provider.
// Both calls block until the provider answers or ctx is done. On failure the
// returned error is an *AuthError carrying the provider's message.
type IdentityService interface {
	CreateAccount(ctx context.Context, creds Credentials) (Token, error)
	SignIn(ctx context.Context, creds Credentials) (Token, error)
}
