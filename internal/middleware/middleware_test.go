package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "middleware-test-secret"
	testCookie = "orbisx_session"
)

type MiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	protected := s.router.Group("/api/v1", middleware.AuthMiddleware(testSecret, testCookie))
	protected.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
}

func (s *MiddlewareTestSuite) token(userID string, ttl time.Duration) string {
	token, _, err := utils.GenerateSessionToken(userID, "admin", testSecret, ttl, "test")
	s.Require().NoError(err)
	return token
}

func (s *MiddlewareTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MiddlewareTestSuite) TestCookieSession() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: s.token("user-1", time.Hour)})

	w := s.do(req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("user-1", w.Body.String())
}

func (s *MiddlewareTestSuite) TestBearerSession() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+s.token("user-2", time.Hour))

	w := s.do(req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("user-2", w.Body.String())
}

func (s *MiddlewareTestSuite) TestMissingSession() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil))
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Authentication required")
}

func (s *MiddlewareTestSuite) TestExpiredSession() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: s.token("user-1", -time.Minute)})

	w := s.do(req)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Session has expired")
}

func (s *MiddlewareTestSuite) TestMalformedAuthorizationHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Token abc")

	w := s.do(req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *MiddlewareTestSuite) TestRequestIDHeader() {
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil))
	_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
	s.NoError(err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	w = s.do(req)
	s.Equal(id, w.Header().Get(middleware.RequestIDHeader))
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewIPRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewIPRateLimiter("five per minute")
	assert.Error(t, err)
}

func TestEventNameForRoute(t *testing.T) {
	assert.Equal(t, "put_quotes_status", middleware.EventNameForRoute(http.MethodPut, "/api/v1/quotes/:id/status"))
	assert.Equal(t, "post_contracts", middleware.EventNameForRoute(http.MethodPost, "/api/v1/contracts"))
	assert.Equal(t, "get_tasks_calendar", middleware.EventNameForRoute(http.MethodGet, "/api/v1/tasks/calendar/:year/:month"))
	assert.Equal(t, "", middleware.EventNameForRoute(http.MethodGet, ""))
}

func TestGetLoggerFromCtxFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))

	custom := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Same(t, custom, middleware.GetLoggerFromCtx(middleware.WithLogger(req.Context(), custom)))
}
