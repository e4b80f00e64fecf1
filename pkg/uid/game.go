package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// randonmly generates a unique game ID
func GenerateGameID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GeneratePlayerID returns a short random identifier for a guest player.
func GeneratePlayerID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "guest_" + hex.EncodeToString(bytes)
}
