package studio

import (
	"context"
	"fmt"

	"promptstudio/internal/batch"
	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/providers/imagen"
)

type indexedPrompt struct {
	n      int
	prompt string
}

// GenerateImages renders every non-blank line of text, one prompt at a time,
// paced by the service limiter. Results are labelled by prompt.
func (s *Service) GenerateImages(ctx context.Context, token, text string, progress batch.Progress) ([]batch.Result[imaging.Image], error) {
	if s.images == nil {
		return nil, fmt.Errorf("%w: image generation is not configured", domain.ErrProviderFailure)
	}
	token = imagen.CleanToken(token)
	if token == "" {
		return nil, fmt.Errorf("%w: Please provide a valid Bearer token.", domain.ErrMissingToken)
	}
	prompts := batch.Lines(text)
	if len(prompts) == 0 {
		return nil, fmt.Errorf("%w: Please enter at least one prompt.", domain.ErrInvalidInput)
	}

	values := make([]indexedPrompt, len(prompts))
	for i, p := range prompts {
		values[i] = indexedPrompt{n: i + 1, prompt: p}
	}
	items := batch.FromValues(values, func(_ int, v indexedPrompt) string { return v.prompt })

	opts := []batch.Option{batch.WithProgress(progress)}
	if s.limiter != nil {
		opts = append(opts, batch.WithLimiter(s.limiter))
	}
	s.logger.Info().Int("prompts", len(prompts)).Msg("studio: image batch started")
	results := batch.Sequential(ctx, items, func(ctx context.Context, v indexedPrompt) (imaging.Image, error) {
		img, err := s.images.Generate(ctx, token, v.prompt)
		if err != nil {
			return imaging.Image{}, err
		}
		img, err = s.output(img)
		if err != nil {
			return imaging.Image{}, fmt.Errorf("convert image: %w", err)
		}
		img.Name = fmt.Sprintf("image_%d%s", v.n, imaging.Extension(img.MIME))
		return img, nil
	}, opts...)
	logBatch(s, "images", results)
	return results, nil
}

// Successful drops failed results, keeping input order.
func Successful(results []batch.Result[imaging.Image]) []imaging.Image {
	out := make([]imaging.Image, 0, len(results))
	for _, r := range results {
		if !r.Failed() && len(r.Value.Data) > 0 {
			out = append(out, r.Value)
		}
	}
	return out
}
