package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
)

type ChatService interface {
	// Process assembles the conversation, calls the generator once and returns
	// the advisory message together with a complete resume document.
	Process(ctx context.Context, turns []models.ChatTurn, uploadedText string) (*models.GenerationOutcome, error)
}

type chatService struct {
	generator     Generator
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

// NewChatService wires the chat flow. generator may be nil when no provider is
// configured; Process then fails with ErrGeneratorNotConfigured. A zero
// timeout leaves the generator call bounded only by ctx.
func NewChatService(generator Generator, timeout time.Duration) ChatService {
	return &chatService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

func (s *chatService) Process(ctx context.Context, turns []models.ChatTurn, uploadedText string) (*models.GenerationOutcome, error) {
	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}

	log := logger.Ctx(ctx).With().
		Str("chat_id", uuid.NewString()).
		Str("provider", s.generator.Provider()).
		Logger()

	for i, turn := range turns {
		log.Debug().
			Int("index", i).
			Str("role", string(turn.Role)).
			Int("content_length", len(turn.Content)).
			Bool("has_resume", turn.HasResume()).
			Msg("Chat turn")
	}

	segments, err := s.promptBuilder.BuildConversation(turns, uploadedText)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("turns", len(turns)).
		Int("segments", len(segments)).
		Int("uploaded_length", len(uploadedText)).
		Msg("Sending conversation to generator")

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := s.generator.Generate(callCtx, s.promptBuilder.SystemInstructions(), segments)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("Generator call failed")
		return nil, &UpstreamError{Provider: s.generator.Provider(), Cause: err}
	}

	log.Debug().Str("raw", raw).Dur("elapsed", time.Since(started)).Msg("Generator response received")

	normalized, err := NormalizeResponse(raw)
	if err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Generator returned invalid JSON")
		return nil, fmt.Errorf("normalize generator response: %w", err)
	}

	outcome := &models.GenerationOutcome{
		AdvisoryMessage: normalized.AdvisoryMessage,
		Resume:          models.CoerceResumeDocument(normalized.Resume),
	}

	log.Info().
		Bool("has_response", outcome.AdvisoryMessage != nil).
		Bool("legacy_shape", normalized.LegacyShape).
		Str("first_name", outcome.Resume.FirstName).
		Int("experience_count", len(outcome.Resume.Experience)).
		Msg("Resume generated")

	return outcome, nil
}
