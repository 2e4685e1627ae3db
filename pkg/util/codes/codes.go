package codes

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidLength = errors.New("invalid code length")
)

const (
	// SmartIDLength is the length of a patient's shareable numeric code.
	SmartIDLength = 6

	// TokenByteLength is the number of random bytes for verification tokens
	// (produces 32 hex chars).
	TokenByteLength = 16
)

// GenerateSmartID creates a random numeric code of the given length with a
// non-zero leading digit, so a 6-digit code is drawn from 900,000 values
// (100000-999999). Uniqueness is NOT guaranteed here; callers must check the
// public index and retry on collision.
func GenerateSmartID(length int) (string, error) {
	if length < 2 {
		return "", ErrInvalidLength
	}

	// span = 9 * 10^(length-1), offset = 10^(length-1)
	offset := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	span := new(big.Int).Mul(big.NewInt(9), offset)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	n.Add(n, offset)

	return n.String(), nil
}

// GenerateSecureToken creates a cryptographically secure hex token.
// byteLength specifies the number of random bytes (output will be 2x this length in hex).
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// GenerateVerificationToken creates a secure token for email verification URLs.
// Returns a 32-character hex string.
func GenerateVerificationToken() (string, error) {
	return GenerateSecureToken(TokenByteLength)
}

// NormalizeCode strips whitespace and any dash formatting a user may have
// typed when sharing a code verbally ("123-456").
func NormalizeCode(code string) string {
	code = strings.ReplaceAll(code, "-", "")
	code = strings.ReplaceAll(code, " ", "")
	return strings.TrimSpace(code)
}

// IsNumeric reports whether the code consists only of ASCII digits.
func IsNumeric(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
