package tool

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateSessionToken returns an opaque token for the session cookie.
func GenerateSessionToken() string {
	return uuid.New().String()
}

// GenerateShortPassword returns a short alphanumeric password (8 hex chars).
// Shorter than UUID so it is easy to read out loud across the room.
func GenerateShortPassword() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()[:8] // fallback
	}
	return hex.EncodeToString(b)
}
