// Package integrity produces the opaque integrity tokens attached to ledger
// records and the display-only block references derived from them.
package integrity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// TokenBytes is the number of random bytes behind a generated token.
const TokenBytes = 32

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
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

// NewToken returns a fresh integrity token for a financial record.
// Tokens are random and carry no information about the record content.
func NewToken() (string, error) {
	return GenerateSecureRandomString(TokenBytes)
}

// BlockReference derives a stable pseudo block identifier from token.
// The same token always yields the same reference; it has no ordering meaning.
func BlockReference(token string) string {
	sum := sha256.Sum256([]byte(token))
	height := uint64(sum[0])<<16 | uint64(sum[1])<<8 | uint64(sum[2])
	return "#" + strconv.FormatUint(height, 10) + "-0x" + hex.EncodeToString(sum[3:11])
}
