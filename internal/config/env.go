package config

import (
	"os"

	"github.com/joho/godotenv"

	apierrors "github.com/rodrigo/fitdeck/internal/errors"
)

// APIKeyEnvVar is the environment variable holding the Gemini credential.
// There is no runtime interface for entering or rotating the key.
const APIKeyEnvVar = "GEMINI_API_KEY"

// LoadAPIKey returns the API key from the process environment, loading a
// .env file first if one is present in the working directory.
func LoadAPIKey() (string, error) {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return "", apierrors.ErrMissingAPIKey
	}
	return key, nil
}
