package jwtauth

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRefreshToken returns a fresh opaque refresh token string: 64 bytes
// of crypto/rand entropy, base64 encoded.
func GenerateRefreshToken() (string, error) {
	raw := make([]byte, 64)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
