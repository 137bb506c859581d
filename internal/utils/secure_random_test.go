package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	other, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestGenerateStorageKey(t *testing.T) {
	key, err := GenerateStorageKey(time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC), "../../etc/Contrato Final.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "2024/03/"), key)
	assert.True(t, strings.HasSuffix(key, "_Contrato_Final.pdf"), key)
	assert.NotContains(t, key, "..")
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "contrato.pdf", SanitizeFileName("contrato.pdf"))
	assert.Equal(t, "passwd", SanitizeFileName("/etc/passwd"))
	assert.Equal(t, "evil.pdf", SanitizeFileName("C:\\temp\\evil.pdf"))
	assert.Equal(t, "Contrato_sesso.pdf", SanitizeFileName("Contrato sessão.pdf"))
	assert.Equal(t, "document", SanitizeFileName(".."))
	assert.Equal(t, "document", SanitizeFileName("***"))
}
