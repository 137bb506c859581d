package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login, logout and session checks.
type authHandler struct {
	cfg         *config.Config
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(cfg *config.Config, as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, authService: as}
}

// registerAuthRoutes registers the public authentication routes. Credential
// endpoints share one per-IP rate limiter.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(cfg, authService)
	limited := middleware.RateLimit(loginLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limited, h.login)
		auth.POST("/google/exchange-code", limited, h.exchangeGoogleCode)
		auth.POST("/logout", h.logout)
		auth.GET("/check", h.checkAuth)
	}
}

func (h *authHandler) setSessionCookie(c *gin.Context, session *domain.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, session.Token, maxAge, h.cfg.SessionCookiePath, "", h.cfg.CookieSecure, true)
}

func (h *authHandler) respondSession(c *gin.Context, user *domain.User, session *domain.Session) {
	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		User:    dto.ToUserResponse(user),
		Token:   session.Token,
	})
}

// login godoc
// @Summary Log in with username and password
// @Description Sets the HttpOnly session cookie. The token is also returned for non-browser clients.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Failure 429 {object} dto.ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, logger.With(slog.String("username", req.Username)), err, "Login failed")
		return
	}
	h.respondSession(c, user, session)
}

// exchangeGoogleCode godoc
// @Summary Log in with Google
// @Description Exchanges an authorization code obtained by the frontend. Only allow-listed emails may sign in.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Sign-in failed"
// @Failure 403 {object} dto.ErrorResponse "Account not allowed"
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	user, session, err := h.authService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, logger, err, "Google sign-in failed")
		return
	}
	h.respondSession(c, user, session)
}

// logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.MutationResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, "", -1, h.cfg.SessionCookiePath, "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Logout realizado com sucesso"})
}

// checkAuth godoc
// @Summary Check the current session
// @Description Always answers 200; authenticated is false when there is no valid session.
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.CheckAuthResponse
// @Router /auth/check [get]
func (h *authHandler) checkAuth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, ok := middleware.SessionTokenFromRequest(c, h.cfg.SessionCookieName)
	if !ok {
		c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}
	claims, err := utils.ParseSessionToken(token, h.cfg.JWTSecret)
	if err != nil {
		logger.Debug("Session check with invalid token", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}

	user, err := h.authService.CheckAuth(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
			return
		}
		respondError(c, logger, err, "Failed to check session")
		return
	}
	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: true, User: &resp})
}
