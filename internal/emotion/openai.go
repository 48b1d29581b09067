package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIModel classifies text through the OpenAI chat completion API,
// asking for a JSON score object over the fixed taxonomy.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIModel creates a new OpenAI-backed emotion model
func NewOpenAIModel(apiKey, model string) *OpenAIModel {
	return &OpenAIModel{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name returns the backend name
func (m *OpenAIModel) Name() string {
	return "openai"
}

const classifySystemPrompt = `You are an emotion classification model for English speech transcripts.
Given a transcript fragment, score how strongly it expresses each of these emotions:
anger, disgust, fear, joy, neutral, sadness, surprise.

Respond with a JSON object of exactly those seven keys mapping to probabilities that sum to 1.0.
Example: {"anger": 0.02, "disgust": 0.01, "fear": 0.03, "joy": 0.85, "neutral": 0.05, "sadness": 0.01, "surprise": 0.03}
Respond with the JSON object only, no explanation.`

// Predict scores a transcript fragment over the seven emotion labels
func (m *OpenAIModel) Predict(ctx context.Context, text string) (map[string]float64, error) {
	req := openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: classifySystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.1, // low temperature for stable scoring
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI returned no choices")
	}

	content := resp.Choices[0].Message.Content

	var scores map[string]float64
	if err := json.Unmarshal([]byte(content), &scores); err != nil {
		log.Printf("[Emotion OpenAI] Failed to parse response directly, trying markdown extraction. Error: %v", err)
		if err := json.Unmarshal([]byte(extractJSONFromMarkdown(content)), &scores); err != nil {
			return nil, fmt.Errorf("failed to parse OpenAI response as JSON: %w", err)
		}
	}

	if len(scores) == 0 {
		return nil, fmt.Errorf("OpenAI returned an empty score object")
	}

	return scores, nil
}

// extractJSONFromMarkdown extracts JSON from markdown code blocks
func extractJSONFromMarkdown(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
