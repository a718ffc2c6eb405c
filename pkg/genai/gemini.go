package genai

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini wraps a generative model behind a plain text-in/text-out call.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini builds a Gemini client. The API key is read once at process
// start; a missing key is reported here rather than at call time.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{client: client, model: client.GenerativeModel(modelName)}, nil
}

// GenerateText sends the prompt and returns the first text part of the
// first candidate.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			text = string(part)
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}
