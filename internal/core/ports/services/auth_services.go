package services

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// AuthSvcFacade authenticates operators and issues session tokens.
type AuthSvcFacade interface {
	// EnsureAdmin creates the configured bootstrap account when it does not exist yet.
	EnsureAdmin(ctx context.Context) error

	// Login verifies a username and password. Any mismatch yields apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)

	// LoginWithGoogle exchanges an authorization code and signs in an allow-listed Google account.
	LoginWithGoogle(ctx context.Context, code string) (*domain.User, *domain.Session, error)

	// CheckAuth returns the user behind an already validated session.
	CheckAuth(ctx context.Context, userID string) (*domain.User, error)
}

// GoogleIdentityProvider turns an authorization code into a verified Google identity.
type GoogleIdentityProvider interface {
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error)
}
