package studio

import (
	"context"
	"fmt"
	"strings"

	"promptstudio/internal/batch"
	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/providers/gemini"
)

// ProductAction describes how a product is staged in a generated shot.
type ProductAction struct {
	Action string `json:"action"`
	Style  string `json:"style"`
	Angle  string `json:"angle"`
}

func (s *Service) flowCompositeRequest(contextImg, product imaging.Image) gemini.Request {
	return gemini.Request{
		Model:  s.models.Pro,
		System: flowCompositePrompt,
		Parts: []gemini.Part{
			gemini.Text(flowCompositeQuery),
			gemini.Text("Image 1: Context/Model/Background"),
			gemini.Inline(contextImg),
			gemini.Text("Image 2: Product to Integrate"),
			gemini.Inline(product),
		},
		Schema: flowCompositeSchema,
	}
}

// GoogleFlowComposite writes three prompts compositing product into contextImg.
func (s *Service) GoogleFlowComposite(ctx context.Context, contextImg, product imaging.Image) (FlowComposite, error) {
	if err := requireImage("context", &contextImg); err != nil {
		return FlowComposite{}, err
	}
	if err := requireImage("product", &product); err != nil {
		return FlowComposite{}, err
	}
	out, err := complete[FlowComposite](ctx, s, "flow_composite", s.flowCompositeRequest(contextImg, product))
	if err != nil {
		return FlowComposite{}, err
	}
	if out.RealisticBlend == "" {
		return FlowComposite{}, fmt.Errorf("%w: Invalid JSON response from AI.", domain.ErrMalformedResponse)
	}
	return out, nil
}

func (s *Service) productActionRequest(img imaging.Image, a ProductAction) gemini.Request {
	query := fmt.Sprintf("Product Action: %q. Photographic Style: %q. Camera Angle: %q. Generate the image prompt.",
		a.Action, a.Style, a.Angle)
	return gemini.Request{
		Model:  s.models.Pro,
		System: productActionPrompt(a.Style, a.Angle),
		Parts:  []gemini.Part{gemini.Text(query), gemini.Inline(img)},
		Schema: promptSchema,
	}
}

func validateAction(a ProductAction) error {
	if strings.TrimSpace(a.Action) == "" {
		return fmt.Errorf("%w: action is required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *Service) ProductActionPrompt(ctx context.Context, img imaging.Image, a ProductAction) (string, error) {
	if err := validateAction(a); err != nil {
		return "", err
	}
	return completePrompt(ctx, s, "product_action", s.productActionRequest(img, a))
}

func (s *Service) ProductActionBatch(ctx context.Context, images []imaging.Image, a ProductAction) ([]batch.Result[string], error) {
	if err := validateAction(a); err != nil {
		return nil, err
	}
	results := batch.Concurrent(ctx, uploads(images), perImage(func(ctx context.Context, img imaging.Image) (string, error) {
		return s.ProductActionPrompt(ctx, img, a)
	}), s.concurrent()...)
	logBatch(s, "product_action", results)
	return results, nil
}

func (s *Service) productBackgroundRequest(img imaging.Image, style, keywords string) gemini.Request {
	query := fmt.Sprintf("Background Style: %q. Optional Keywords: %q. Generate the background scene prompt.", style, keywords)
	return gemini.Request{
		Model:  s.models.Pro,
		System: productBackgroundPrompt(style, keywords),
		Parts:  []gemini.Part{gemini.Text(query), gemini.Inline(img)},
		Schema: promptSchema,
	}
}

// ProductBackground designs an empty stage for the product in img.
func (s *Service) ProductBackground(ctx context.Context, img imaging.Image, style, keywords string) (string, error) {
	if err := requireImage("product", &img); err != nil {
		return "", err
	}
	return completePrompt(ctx, s, "product_background", s.productBackgroundRequest(img, style, keywords))
}

const (
	maxViral       = 20
	defaultCollage = 3
	minCollage     = 2
	maxCollage     = 9
)

func (s *Service) viralRequest(img imaging.Image, count int) gemini.Request {
	return gemini.Request{
		Model:  s.models.Pro,
		System: viralPrompt(count),
		Parts: []gemini.Part{
			gemini.Text(fmt.Sprintf("Analyze this product and generate %d viral video concepts.", count)),
			gemini.Inline(img),
		},
		Schema: promptListSchema(fmt.Sprintf("An array of exactly %d string prompts in English.", count)),
	}
}

// ViralBatch returns count short-form video concepts for a product.
func (s *Service) ViralBatch(ctx context.Context, img imaging.Image, count int) ([]string, error) {
	if err := requireImage("product", &img); err != nil {
		return nil, err
	}
	return completeList(ctx, s, "viral", s.viralRequest(img, clamp(count, 1, maxViral)))
}

func (s *Service) collageRequest(img imaging.Image, count int) gemini.Request {
	return gemini.Request{
		Model:  s.models.Pro,
		System: collagePrompt(count),
		Parts: []gemini.Part{
			gemini.Text(fmt.Sprintf("Analyze this product and generate a %d-part lifestyle collage/montage prompt based on the aesthetic POV style.", count)),
			gemini.Inline(img),
		},
		Schema: promptSchema,
	}
}

// Collage returns one montage prompt with count cuts. A zero count uses the
// default of three.
func (s *Service) Collage(ctx context.Context, img imaging.Image, count int) (string, error) {
	if err := requireImage("product", &img); err != nil {
		return "", err
	}
	if count == 0 {
		count = defaultCollage
	}
	return completePrompt(ctx, s, "collage", s.collageRequest(img, clamp(count, minCollage, maxCollage)))
}

func completeList(ctx context.Context, s *Service, task string, req gemini.Request) ([]string, error) {
	out, err := complete[PromptList](ctx, s, task, req)
	if err != nil {
		return nil, err
	}
	if out.Prompts == nil {
		return nil, fmt.Errorf("%w: Failed to get a valid list of prompts from the API.", domain.ErrMalformedResponse)
	}
	return out.Prompts, nil
}
