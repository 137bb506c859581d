package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/orbisx_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/google/uuid"
)

var errInvalidCredentials = apperrors.NewUnauthorizedError("Invalid username or password")

type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	google   portssvc.GoogleIdentityProvider
}

// AuthOption configures the auth service beyond the shared options.
type AuthOption func(*authService)

// WithGoogleIdentityProvider enables Google sign-in.
func WithGoogleIdentityProvider(p portssvc.GoogleIdentityProvider) AuthOption {
	return func(s *authService) {
		s.google = p
	}
}

// WithAuthServiceOptions applies shared options to the auth service.
func WithAuthServiceOptions(options ...ServiceOption) AuthOption {
	return func(s *authService) {
		for _, option := range options {
			option(&s.BaseService)
		}
	}
}

// NewAuthService creates the session service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, options ...AuthOption) portssvc.AuthSvcFacade {
	svc := &authService{
		BaseService: newBaseService(nil),
		cfg:         cfg,
		userRepo:    userRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// EnsureAdmin creates the bootstrap operator account if it does not exist yet.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminPassword == "" {
		s.LogInfo(ctx, "No admin password configured, skipping operator bootstrap")
		return nil
	}

	_, err := s.userRepo.FindUserByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := utils.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     s.cfg.AdminUsername,
		Name:         s.cfg.AdminName,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  newAuditFields(s.Now(), "system"),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.LogInfo(ctx, "Created bootstrap operator account", slog.String("username", user.Username))
	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown user", slog.String("username", username))
			return nil, nil, errInvalidCredentials
		}
		return nil, nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, nil, errInvalidCredentials
	}

	session, err := s.issueSession(user)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue session token", slog.String("user_id", user.UserID))
		return nil, nil, apperrors.NewInternalServerError("Failed to create session")
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, session, nil
}

// LoginWithGoogle exchanges an authorization code and signs in the matching user.
// Only verified, allow-listed emails may sign in; unknown ones get an account.
func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*domain.User, *domain.Session, error) {
	if s.google == nil {
		return nil, nil, apperrors.NewUnauthorizedError("Google sign-in is not configured")
	}

	identity, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google code exchange failed")
		return nil, nil, apperrors.NewAppError(http.StatusUnauthorized, "Google sign-in failed", apperrors.ErrUnauthorized)
	}
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if !identity.EmailVerified || !slices.Contains(s.cfg.AllowedGoogleEmails, email) {
		s.LogInfo(ctx, "Google sign-in refused", slog.String("email", email))
		return nil, nil, apperrors.NewAppError(http.StatusForbidden, "This Google account is not allowed", apperrors.ErrForbidden)
	}

	user, err := s.findGoogleUser(ctx, identity.Subject, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.createGoogleUser(ctx, identity, email)
	}
	if err != nil {
		return nil, nil, err
	}

	session, err := s.issueSession(user)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue session token", slog.String("user_id", user.UserID))
		return nil, nil, apperrors.NewInternalServerError("Failed to create session")
	}
	s.LogInfo(ctx, "User logged in with Google", slog.String("user_id", user.UserID))
	return user, session, nil
}

func (s *authService) findGoogleUser(ctx context.Context, subject, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, subject)
	if !errors.Is(err, apperrors.ErrNotFound) {
		return user, err
	}
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *authService) createGoogleUser(ctx context.Context, identity *domain.GoogleIdentity, email string) (*domain.User, error) {
	name := identity.Name
	if name == "" {
		name = email
	}
	subject := identity.Subject
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       email,
		Name:           name,
		Email:          &email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &subject,
		AuditFields:    newAuditFields(s.Now(), "system"),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create Google user", slog.String("email", email))
		return nil, err
	}
	s.LogInfo(ctx, "Created user from Google sign-in", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) issueSession(user *domain.User) (*domain.Session, error) {
	token, expiresAt, err := utils.GenerateSessionToken(user.UserID, user.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) CheckAuth(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Session user no longer exists")
		}
		return nil, err
	}
	return user, nil
}
