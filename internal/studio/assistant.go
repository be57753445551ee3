package studio

import (
	"context"
	"strings"

	"promptstudio/internal/providers/gemini"
)

func (s *Service) assistantRequest(history []gemini.Message) gemini.ChatRequest {
	return gemini.ChatRequest{
		Model:    s.models.Pro,
		System:   assistantPrompt,
		Messages: history,
	}
}

// Assistant streams the reply to the chat history, calling onChunk for every
// piece of text as it arrives.
func (s *Service) Assistant(ctx context.Context, history []gemini.Message, onChunk func(string) error) error {
	err := s.completer.Stream(ctx, s.assistantRequest(history), onChunk)
	if err != nil {
		s.logger.Warn().Err(err).Int("turns", len(history)).Msg("studio: assistant stream failed")
	}
	return err
}

// AssistantReply collects a streamed reply into one string.
func (s *Service) AssistantReply(ctx context.Context, history []gemini.Message) (string, error) {
	var b strings.Builder
	err := s.Assistant(ctx, history, func(chunk string) error {
		b.WriteString(chunk)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
