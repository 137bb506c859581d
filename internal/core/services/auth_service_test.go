package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/core/services"
	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	users   *MockUserRepository
	google  *MockGoogleProvider
	service portssvc.AuthSvcFacade
	ctx     context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:           "test-secret",
		JWTExpiryDuration:   time.Hour,
		JWTIssuer:           "test",
		AdminUsername:       "admin",
		AdminPassword:       "correct-horse",
		AdminName:           "Administrador",
		AllowedGoogleEmails: []string{"ana@example.com"},
	}
	suite.users = new(MockUserRepository)
	suite.google = new(MockGoogleProvider)
	suite.service = services.NewAuthService(suite.cfg, suite.users,
		services.WithGoogleIdentityProvider(suite.google),
		services.WithAuthServiceOptions(services.WithClock(fixedClock)))
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) localUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: "user-1", Username: "admin", Name: "Administrador", PasswordHash: hash, AuthProvider: domain.ProviderLocal}
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_CreatesMissingUser() {
	suite.users.On("FindUserByUsername", mock.Anything, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.users.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && utils.CheckPasswordHash("correct-horse", u.PasswordHash)
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.EnsureAdmin(suite.ctx))
	suite.users.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_ExistingUser() {
	suite.users.On("FindUserByUsername", mock.Anything, "admin").Return(&domain.User{UserID: "user-1"}, nil).Once()

	suite.Require().NoError(suite.service.EnsureAdmin(suite.ctx))
	suite.users.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin_NoPassword() {
	suite.cfg.AdminPassword = ""

	suite.Require().NoError(suite.service.EnsureAdmin(suite.ctx))
	suite.users.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	suite.users.On("FindUserByUsername", mock.Anything, "admin").Return(suite.localUser("correct-horse"), nil).Once()

	user, session, err := suite.service.Login(suite.ctx, "admin", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	claims, err := utils.ParseSessionToken(session.Token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal("user-1", claims.Subject)
	suite.Equal("admin", claims.Username)
	suite.WithinDuration(time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.users.On("FindUserByUsername", mock.Anything, "admin").Return(suite.localUser("correct-horse"), nil).Once()

	_, _, err := suite.service.Login(suite.ctx, "admin", "wrong-password")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	suite.users.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(suite.ctx, "ghost", "whatever")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_CreatesAllowedUser() {
	suite.google.On("ExchangeCode", mock.Anything, "code-1").Return(&domain.GoogleIdentity{
		Subject: "google-sub", Email: "Ana@Example.com", Name: "Ana", EmailVerified: true,
	}, nil).Once()
	suite.users.On("FindUserByProviderDetails", mock.Anything, domain.ProviderGoogle, "google-sub").Return(nil, apperrors.ErrNotFound).Once()
	suite.users.On("FindUserByEmail", mock.Anything, "ana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.users.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.Username == "ana@example.com" && u.PasswordHash == ""
	})).Return(nil).Once()

	user, session, err := suite.service.LoginWithGoogle(suite.ctx, "code-1")

	suite.Require().NoError(err)
	suite.Equal("Ana", user.Name)
	suite.NotEmpty(session.Token)
	suite.users.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_NotAllowed() {
	suite.google.On("ExchangeCode", mock.Anything, "code-1").Return(&domain.GoogleIdentity{
		Subject: "other", Email: "mallory@example.com", EmailVerified: true,
	}, nil).Once()

	_, _, err := suite.service.LoginWithGoogle(suite.ctx, "code-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.users.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_ExchangeFails() {
	suite.google.On("ExchangeCode", mock.Anything, "bad").Return(nil, errors.New("invalid_grant")).Once()

	_, _, err := suite.service.LoginWithGoogle(suite.ctx, "bad")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_NotConfigured() {
	svc := services.NewAuthService(suite.cfg, suite.users)

	_, _, err := svc.LoginWithGoogle(suite.ctx, "code-1")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestCheckAuth_DeletedUser() {
	suite.users.On("FindUserByID", mock.Anything, "gone").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CheckAuth(suite.ctx, "gone")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
