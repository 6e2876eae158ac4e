package services

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	defaultAnthropicModel = "claude-sonnet-4-5-20250929"
	defaultGeminiModel    = "gemini-2.5-flash"
)

// Generator is the single external text-generation call behind the chat flow.
type Generator interface {
	Generate(ctx context.Context, systemInstructions string, segments []PromptSegment) (string, error)
	Provider() string
}

type GeneratorConfig struct {
	Provider        string
	Model           string
	MaxTokens       int
	Temperature     float64
	AnthropicAPIKey string
	GeminiAPIKey    string
}

// NewGenerator builds the generator for cfg.Provider. It returns
// ErrGeneratorNotConfigured when the provider's API key is empty.
func NewGenerator(ctx context.Context, cfg GeneratorConfig) (Generator, error) {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderAnthropic, "":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", ErrGeneratorNotConfigured)
		}
		if cfg.Model == "" {
			cfg.Model = defaultAnthropicModel
		}
		return NewAnthropicGenerator(cfg), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrGeneratorNotConfigured)
		}
		if cfg.Model == "" {
			cfg.Model = defaultGeminiModel
		}
		return NewGeminiGenerator(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}
