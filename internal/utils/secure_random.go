package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// GenerateSecureRandomString generates lengthInBytes random bytes and hex encodes them.
// lengthInBytes=32 results in a 64-character string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateStorageKey builds an unguessable, date-sharded key for an uploaded file,
// e.g. "2024/03/9f86d081884c7d65_contrato.pdf".
func GenerateStorageKey(now time.Time, originalName string) (string, error) {
	random, err := GenerateSecureRandomString(8)
	if err != nil {
		return "", err
	}
	return path.Join(now.UTC().Format("2006/01"), random+"_"+SanitizeFileName(originalName)), nil
}

// SanitizeFileName keeps letters, digits, dot, dash and underscore of the base name.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	clean = strings.TrimLeft(clean, ".")
	if clean == "" {
		return "document"
	}
	return clean
}
