package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a unique identifier for one play of a game module.
func GenerateSessionID() string {
	return uuid.NewString()
}
