package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("ALLOWED_GOOGLE_EMAILS", " Ana@Example.com, ,bob@example.com")
	t.Setenv("MAX_DOCUMENT_SIZE_MB", "2")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-secret-key-that-is-long-enough", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"ana@example.com", "bob@example.com"}, cfg.AllowedGoogleEmails)
	assert.Equal(t, int64(2<<20), cfg.MaxDocumentSizeByte)
	assert.True(t, cfg.IsProduction)
	assert.True(t, cfg.CookieSecure, "cookies follow production mode unless overridden")
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "forever")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "orbisx_session", cfg.SessionCookieName)
}
