package emotion

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// normalize lowercases and trims a native label name before alias lookup.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateModel creates an emotion model based on environment configuration
func CreateModel() (Model, error) {
	backend := strings.ToLower(os.Getenv("EMOTION_PROVIDER"))

	// Default to OpenAI if not specified
	if backend == "" {
		backend = "openai"
		log.Printf("[Emotion Factory] EMOTION_PROVIDER not set, defaulting to 'openai'")
	}

	switch backend {
	case "openai":
		return createOpenAIModel()
	case "server":
		return createServerModel()
	default:
		return nil, fmt.Errorf("unsupported emotion provider: %s. Supported: openai, server", backend)
	}
}

func createOpenAIModel() (Model, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	modelName := os.Getenv("EMOTION_OPENAI_MODEL")
	if modelName == "" {
		modelName = defaultOpenAIModel
		log.Printf("[Emotion Factory] EMOTION_OPENAI_MODEL not set, using default: %s", modelName)
	}

	log.Printf("[Emotion Factory] Creating OpenAI emotion model")
	return NewOpenAIModel(apiKey, modelName), nil
}

// createServerModel creates a client for a self-hosted inference server
// exposing POST /detect (e.g. a transformers model behind a thin HTTP shim).
func createServerModel() (Model, error) {
	url := os.Getenv("EMOTION_SERVER_URL")
	if url == "" {
		return nil, fmt.Errorf("EMOTION_SERVER_URL environment variable is not set")
	}

	log.Printf("[Emotion Factory] Creating inference server emotion model: %s", url)
	return NewServerModel(url), nil
}
