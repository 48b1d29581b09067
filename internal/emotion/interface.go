package emotion

import "context"

// Model defines the interface for emotion classification backends
type Model interface {
	// Predict scores a piece of text over the model's native label
	// vocabulary. Scores need not sum to 1; FromNative handles folding
	// and normalization.
	Predict(ctx context.Context, text string) (map[string]float64, error)

	// Name returns the name of the backend (e.g., "openai", "server")
	Name() string
}
