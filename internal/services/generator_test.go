package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("anthropic is the default provider", func(t *testing.T) {
		gen, err := NewGenerator(ctx, GeneratorConfig{AnthropicAPIKey: "test-key"})
		require.NoError(t, err)
		assert.Equal(t, ProviderAnthropic, gen.Provider())
	})

	t.Run("missing anthropic key", func(t *testing.T) {
		_, err := NewGenerator(ctx, GeneratorConfig{Provider: ProviderAnthropic})
		assert.ErrorIs(t, err, ErrGeneratorNotConfigured)
	})

	t.Run("missing gemini key", func(t *testing.T) {
		_, err := NewGenerator(ctx, GeneratorConfig{Provider: "Gemini", AnthropicAPIKey: "unused"})
		assert.ErrorIs(t, err, ErrGeneratorNotConfigured)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewGenerator(ctx, GeneratorConfig{Provider: "openai"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrGeneratorNotConfigured)
	})
}
