package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// generatedCodeLength is the length of server-generated short codes.
const generatedCodeLength = 6

// maxCodeLength matches the VARCHAR(155) column on urls.short_code.
const maxCodeLength = 155

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Short codes that would shadow our own routes.
var reservedCodes = map[string]bool{
	"api":       true,
	"health":    true,
	"short":     true,
	"shorten":   true,
	"auth":      true,
	"login":     true,
	"register":  true,
	"analytics": true,
	"qrcode":    true,
	"urls":      true,
	"url":       true,
}

// generateShortCode produces a random URL-safe code. It makes no uniqueness
// guarantee; the unique constraint on urls.short_code is the arbiter, and the
// caller retries on a collision.
func generateShortCode() (string, error) {
	buf := make([]byte, generatedCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// Base64 URL encoding keeps the output in [A-Za-z0-9_-].
	return base64.RawURLEncoding.EncodeToString(buf)[:generatedCodeLength], nil
}

// validateCustomShortCode checks length, charset and the reserved-word list
// for a caller-supplied code.
func validateCustomShortCode(code string) error {
	if len(code) == 0 || len(code) > maxCodeLength {
		return fmt.Errorf("%w: must be 1-%d characters", ErrInvalidShortCode, maxCodeLength)
	}
	if !codePattern.MatchString(code) {
		return fmt.Errorf("%w: only letters, numbers, hyphens, and underscores are allowed", ErrInvalidShortCode)
	}
	if reservedCodes[strings.ToLower(code)] {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidShortCode, code)
	}
	return nil
}
