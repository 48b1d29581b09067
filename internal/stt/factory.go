package stt

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// CreateRecognizer creates an STT provider based on environment configuration
func CreateRecognizer() (Recognizer, error) {
	providerName := strings.ToLower(os.Getenv("STT_PROVIDER"))

	// Default to Whisper if not specified
	if providerName == "" {
		providerName = "whisper"
		log.Printf("[STT Factory] STT_PROVIDER not set, defaulting to 'whisper'")
	}

	switch providerName {
	case "whisper":
		return createWhisperRecognizer()
	case "google":
		return createGoogleRecognizer()
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: whisper, google", providerName)
	}
}

// createWhisperRecognizer creates an OpenAI Whisper recognizer
func createWhisperRecognizer() (Recognizer, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	log.Printf("[STT Factory] Creating Whisper recognizer")
	return NewWhisperRecognizer(apiKey), nil
}

// createGoogleRecognizer creates a Google STT recognizer
// GOOGLE_STT_KEY_FILE can be either:
//   - An API key (39 characters, typically starts with "AIzaSy")
//   - A file path to a JSON key file (e.g., "./keys/google-service-account.json")
//   - A JSON string containing the service account credentials
func createGoogleRecognizer() (Recognizer, error) {
	keyData := os.Getenv("GOOGLE_STT_KEY_FILE")

	keyDataTrimmed := strings.TrimSpace(keyData)
	isAPIKey := len(keyDataTrimmed) == 39 && strings.HasPrefix(keyDataTrimmed, "AIzaSy")

	if keyData == "" {
		return nil, fmt.Errorf("GOOGLE_STT_KEY_FILE environment variable is not set. It can be:\n  - An API key (39 characters)\n  - A file path to a JSON key file\n  - A JSON string containing service account credentials")
	}

	if isAPIKey {
		log.Printf("[STT Factory] Creating Google STT recognizer with API key")
	} else {
		log.Printf("[STT Factory] Creating Google STT recognizer with service account")
	}
	return NewGoogleRecognizer(keyData)
}
