package studio

import (
	"context"

	"promptstudio/internal/character"
	"promptstudio/internal/imaging"
	"promptstudio/internal/providers/gemini"
)

func (s *Service) characterRequest(img imaging.Image) gemini.Request {
	return gemini.Request{
		Model:  s.models.Fast,
		System: characterAnalystPrompt,
		Parts: []gemini.Part{
			gemini.Text("Analyze this character image and extract all details according to the schema."),
			gemini.Inline(img),
		},
		Schema: characterSchema(),
	}
}

// AnalyzeCharacter extracts a descriptor from img and overlays it on form.
func (s *Service) AnalyzeCharacter(ctx context.Context, img imaging.Image, form character.Descriptor) (character.Descriptor, error) {
	if err := requireImage("character", &img); err != nil {
		return character.Descriptor{}, err
	}
	if err := imaging.ValidateUpload(img.Name, img.MIME); err != nil {
		return character.Descriptor{}, err
	}
	analysis, err := complete[character.Descriptor](ctx, s, "character_analysis", s.characterRequest(img))
	if err != nil {
		return character.Descriptor{}, err
	}
	return character.Merge(form, analysis), nil
}

// CharacterPrompt renders the descriptor locally; no AI call is made.
func (s *Service) CharacterPrompt(d character.Descriptor) string {
	return s.builder.Build(d)
}
