// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"salvatore/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient backs the assistant with Google's generative models. Gemini
// has no chat-role wire format here, so conversations are flattened into a
// single prompt.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{model: client.GenerativeModel(modelName)}, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return sb.String()
}

func (g *GeminiClient) Complete(ctx context.Context, msgs []models.Message) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(FlattenConversation(msgs)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return collectText(resp), nil
}

func (g *GeminiClient) Stream(ctx context.Context, msgs []models.Message, onChunk func(string) error) error {
	iter := g.model.GenerateContentStream(ctx, genai.Text(FlattenConversation(msgs)))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("gemini stream error: %w", err)
		}
		if text := collectText(resp); text != "" {
			if err := onChunk(text); err != nil {
				return err
			}
		}
	}
}
