// Package studio implements the prompt studio tabs on top of the AI
// completion and image-generation services.
package studio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"promptstudio/internal/batch"
	"promptstudio/internal/character"
	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/imaging/transcode"
	"promptstudio/internal/infra"
	"promptstudio/internal/providers/gemini"
	"promptstudio/internal/providers/imagen"
)

// Models names the completion models used per task.
type Models struct {
	Pro  string
	Fast string
}

type Options struct {
	Completer gemini.Completer
	Images    imagen.Generator
	Models    Models
	Builder   character.Builder
	// BatchLimit caps concurrent items in image batches; zero runs all at once.
	BatchLimit int
	// ImageInterval and ImageBurst pace the sequential image batch.
	ImageInterval time.Duration
	ImageBurst    int
	Output        transcode.Func
	Logger        *infra.Logger
}

type Service struct {
	completer  gemini.Completer
	images     imagen.Generator
	models     Models
	builder    character.Builder
	batchLimit int
	limiter    *rate.Limiter
	output     transcode.Func
	logger     *infra.Logger
}

func NewService(opts Options) *Service {
	models := opts.Models
	if models.Pro == "" {
		models.Pro = gemini.DefaultModel
	}
	if models.Fast == "" {
		models.Fast = gemini.DefaultFastModel
	}
	var limiter *rate.Limiter
	if opts.ImageInterval > 0 {
		burst := opts.ImageBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(opts.ImageInterval), burst)
	}
	output := opts.Output
	if output == nil {
		output = transcode.Identity
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Service{
		completer:  opts.Completer,
		images:     opts.Images,
		models:     models,
		builder:    opts.Builder,
		batchLimit: opts.BatchLimit,
		limiter:    limiter,
		output:     output,
		logger:     logger,
	}
}

// complete runs req and decodes the answer into T.
func complete[T any](ctx context.Context, s *Service, task string, req gemini.Request) (T, error) {
	var zero T
	raw, err := s.completer.Complete(ctx, req)
	if err != nil {
		return zero, err
	}
	out, err := gemini.DecodeJSON[T](raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("task", task).Int("chars", len(raw)).Msg("studio: undecodable completion")
		return zero, err
	}
	s.logger.Debug().Str("task", task).Str("model", req.Model).Msg("studio: completion decoded")
	return out, nil
}

// completePrompt is complete for the common {"prompt": "..."} answer.
func completePrompt(ctx context.Context, s *Service, task string, req gemini.Request) (string, error) {
	out, err := complete[PromptResult](ctx, s, task, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Prompt) == "" {
		return "", fmt.Errorf("%w: Failed to get a valid prompt from the API.", domain.ErrMalformedResponse)
	}
	return out.Prompt, nil
}

// uploads labels uploaded images by file name for a batch.
func uploads(images []imaging.Image) []batch.Item[imaging.Image] {
	return batch.FromValues(images, func(i int, img imaging.Image) string {
		if img.Name != "" {
			return img.Name
		}
		return fmt.Sprintf("image_%d", i+1)
	})
}

// perImage validates an upload before handing it to fn.
func perImage[T any](fn func(context.Context, imaging.Image) (T, error)) batch.Func[imaging.Image, T] {
	return func(ctx context.Context, img imaging.Image) (T, error) {
		if err := imaging.ValidateUpload(img.Name, img.MIME); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx, img)
	}
}

func (s *Service) concurrent() []batch.Option {
	return []batch.Option{batch.WithLimit(s.batchLimit)}
}

func logBatch[T any](s *Service, task string, results []batch.Result[T]) {
	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	s.logger.Info().Str("task", task).Int("items", len(results)).Int("failed", failed).Msg("studio: batch finished")
}

func requireImage(field string, img *imaging.Image) error {
	if img == nil || len(img.Data) == 0 {
		return fmt.Errorf("%w: %s image is required", domain.ErrInvalidInput, field)
	}
	return nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
