package studio

import (
	"context"
	"fmt"
	"strings"

	"promptstudio/internal/domain"
	"promptstudio/internal/providers/gemini"
)

const maxMalayVariants = 20

type MalayOptions struct {
	Concept         string `json:"concept"`
	Quantity        int    `json:"quantity"`
	OutdoorVibrance bool   `json:"outdoorVibrance"`
}

func (s *Service) malayRequest(o MalayOptions) gemini.Request {
	query := fmt.Sprintf("Generate %d variations for the concept: %q.", o.Quantity, o.Concept)
	if o.OutdoorVibrance {
		query += " Ensure all prompts use natural daylight."
	}
	return gemini.Request{
		Model:  s.models.Pro,
		System: malayVariantsPrompt(o.OutdoorVibrance),
		Parts:  []gemini.Part{gemini.Text(query)},
		Schema: promptListSchema(fmt.Sprintf("An array of exactly %d string prompts.", o.Quantity)),
	}
}

// MalayVariants expands a concept into photographic prompts with a Malaysian
// setting.
func (s *Service) MalayVariants(ctx context.Context, o MalayOptions) ([]string, error) {
	o.Concept = strings.TrimSpace(o.Concept)
	if o.Concept == "" {
		return nil, fmt.Errorf("%w: concept is required", domain.ErrInvalidInput)
	}
	o.Quantity = clamp(o.Quantity, 1, maxMalayVariants)
	return completeList(ctx, s, "malay_variants", s.malayRequest(o))
}
