package advice

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Gemini request constants
const (
	GeminiModel  = "gemini-2.5-flash"
	PromptFormat = `Provide a very short (max 20 words), practical storage tip in Indonesian for this item: "%s" in category "%s". Focus on longevity.`
)

// FallbackEmptyResponse is returned when the service answers with no text
const FallbackEmptyResponse = "Simpan di tempat sejuk dan kering."

// GeminiProvider fetches storage tips from the Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a provider authenticated with the given API key
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

// StorageTip requests a short Indonesian storage tip for the item
func (p *GeminiProvider) StorageTip(ctx context.Context, itemName, category string) (string, error) {
	prompt := fmt.Sprintf(PromptFormat, itemName, category)

	resp, err := p.client.Models.GenerateContent(ctx, GeminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackEmptyResponse, nil
	}
	return text, nil
}
