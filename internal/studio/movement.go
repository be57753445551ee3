package studio

import (
	"context"
	"fmt"

	"promptstudio/internal/batch"
	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/providers/gemini"
)

func (s *Service) movementRequest(img imaging.Image, includeLight bool) gemini.Request {
	system := movementPrompt
	if includeLight {
		system = movementSparklePrompt
	}
	return gemini.Request{
		Model:  s.models.Pro,
		System: system,
		Parts:  []gemini.Part{gemini.Text(movementQuery), gemini.Inline(img)},
		Schema: promptSchema,
	}
}

func (s *Service) advancedMovementRequest(img imaging.Image, includeLight bool) gemini.Request {
	system := advancedMovementPrompt
	if includeLight {
		system = advancedMovementSparklePrompt
	}
	return gemini.Request{
		Model:  s.models.Pro,
		System: system,
		Parts:  []gemini.Part{gemini.Text(advancedMovementQuery), gemini.Inline(img)},
		Schema: advancedMovementSchema,
	}
}

// MovementPrompt returns one camera-movement prompt for a product image.
func (s *Service) MovementPrompt(ctx context.Context, img imaging.Image, includeLight bool) (string, error) {
	return completePrompt(ctx, s, "movement", s.movementRequest(img, includeLight))
}

// AdvancedMovementPrompts returns three directorial takes for a product image.
func (s *Service) AdvancedMovementPrompts(ctx context.Context, img imaging.Image, includeLight bool) (AdvancedMovement, error) {
	out, err := complete[AdvancedMovement](ctx, s, "advanced_movement", s.advancedMovementRequest(img, includeLight))
	if err != nil {
		return AdvancedMovement{}, err
	}
	if out.CinematicReveal == "" || out.IntricateDetail == "" || out.DynamicEnergy == "" {
		return AdvancedMovement{}, fmt.Errorf("%w: Failed to get a valid set of prompts from the advanced API.", domain.ErrMalformedResponse)
	}
	return out, nil
}

func (s *Service) MovementBatch(ctx context.Context, images []imaging.Image, includeLight bool) []batch.Result[string] {
	results := batch.Concurrent(ctx, uploads(images), perImage(func(ctx context.Context, img imaging.Image) (string, error) {
		return s.MovementPrompt(ctx, img, includeLight)
	}), s.concurrent()...)
	logBatch(s, "movement", results)
	return results
}

func (s *Service) AdvancedMovementBatch(ctx context.Context, images []imaging.Image, includeLight bool) []batch.Result[AdvancedMovement] {
	results := batch.Concurrent(ctx, uploads(images), perImage(func(ctx context.Context, img imaging.Image) (AdvancedMovement, error) {
		return s.AdvancedMovementPrompts(ctx, img, includeLight)
	}), s.concurrent()...)
	logBatch(s, "advanced_movement", results)
	return results
}
