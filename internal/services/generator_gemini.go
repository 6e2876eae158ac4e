package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"seekr/backend/internal/models"
)

type geminiGenerator struct {
	client      *genai.Client
	modelName   string
	maxTokens   int32
	temperature float32
}

func NewGeminiGenerator(ctx context.Context, cfg GeneratorConfig) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:      client,
		modelName:   cfg.Model,
		maxTokens:   int32(cfg.MaxTokens),
		temperature: float32(cfg.Temperature),
	}, nil
}

func (g *geminiGenerator) Provider() string {
	return ProviderGemini
}

// Generate implements Generator.
func (g *geminiGenerator) Generate(ctx context.Context, systemInstructions string, segments []PromptSegment) (string, error) {
	contents := make([]*genai.Content, 0, len(segments))
	for _, seg := range segments {
		role := genai.RoleUser
		if seg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(seg.Text, genai.Role(role)))
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstructions, genai.RoleUser),
		Temperature:       &g.temperature,
		MaxOutputTokens:   g.maxTokens,
		ResponseMIMEType:  "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
