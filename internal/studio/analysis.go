package studio

import (
	"context"
	"fmt"
	"strings"

	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/providers/gemini"
)

func (s *Service) singleImageRequest(system, query string, img imaging.Image) gemini.Request {
	return gemini.Request{
		Model:  s.models.Pro,
		System: system,
		Parts:  []gemini.Part{gemini.Text(query), gemini.Inline(img)},
	}
}

// StyleAnalysis deconstructs the aesthetic of img into a reusable prompt.
func (s *Service) StyleAnalysis(ctx context.Context, img imaging.Image) (string, error) {
	if err := requireImage("style", &img); err != nil {
		return "", err
	}
	req := s.singleImageRequest(styleAnalysisPrompt, "Analyze this image and generate a detailed style prompt.", img)
	req.Schema = promptSchema
	return completePrompt(ctx, s, "style_analysis", req)
}

// BackgroundSet describes the stage behind the product, ignoring the product.
func (s *Service) BackgroundSet(ctx context.Context, img imaging.Image) (BackgroundSet, error) {
	if err := requireImage("background", &img); err != nil {
		return BackgroundSet{}, err
	}
	req := s.singleImageRequest(backgroundSetPrompt, "Analyze the background set design of this image.", img)
	req.Schema = backgroundSetSchema
	out, err := complete[BackgroundSet](ctx, s, "background_set", req)
	if err != nil {
		return BackgroundSet{}, err
	}
	if out.RecreationPrompt == "" {
		return BackgroundSet{}, fmt.Errorf("%w: Failed to analyze background set.", domain.ErrMalformedResponse)
	}
	return out, nil
}

func (s *Service) styleTransferRequest(product, style imaging.Image) gemini.Request {
	return gemini.Request{
		Model:  s.models.Pro,
		System: styleTransferPrompt,
		Parts: []gemini.Part{
			gemini.Text(styleTransferQuery),
			gemini.Text("Image 1: Product"),
			gemini.Inline(product),
			gemini.Text("Image 2: Style Reference"),
			gemini.Inline(style),
		},
		Schema: promptSchema,
	}
}

func (s *Service) StyleTransfer(ctx context.Context, product, style imaging.Image) (string, error) {
	if err := requireImage("product", &product); err != nil {
		return "", err
	}
	if err := requireImage("style", &style); err != nil {
		return "", err
	}
	return completePrompt(ctx, s, "style_transfer", s.styleTransferRequest(product, style))
}

// PosterInput describes a poster. Person is optional; when present the
// prompt composites that subject into the design.
type PosterInput struct {
	Style       imaging.Image
	Description string
	Person      *imaging.Image
}

func (s *Service) posterRequest(in PosterInput) gemini.Request {
	req := gemini.Request{
		Model:  s.models.Pro,
		System: posterPrompt,
		Parts: []gemini.Part{
			gemini.Text(fmt.Sprintf("Create a poster prompt for: %q", in.Description)),
			gemini.Text("Input 1: Style Reference Image"),
			gemini.Inline(in.Style),
		},
		Schema: promptSchema,
	}
	if in.Person != nil && len(in.Person.Data) > 0 {
		req.System = posterCompositePrompt
		req.Parts = append(req.Parts,
			gemini.Text("Input 2: Person/Subject Image to Composite"),
			gemini.Inline(*in.Person),
		)
	}
	return req
}

func (s *Service) Poster(ctx context.Context, in PosterInput) (string, error) {
	if err := requireImage("style", &in.Style); err != nil {
		return "", err
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return "", fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	return completePrompt(ctx, s, "poster", s.posterRequest(in))
}

// InfoExtract reads every text and number visible in img.
func (s *Service) InfoExtract(ctx context.Context, img imaging.Image) (InfoExtraction, error) {
	if err := requireImage("info", &img); err != nil {
		return InfoExtraction{}, err
	}
	req := s.singleImageRequest(infoExtractPrompt, "Analyze this image and extract all information according to the schema.", img)
	req.Schema = infoExtractSchema
	out, err := complete[InfoExtraction](ctx, s, "info_extract", req)
	if err != nil {
		return InfoExtraction{}, err
	}
	if out.ExtractedText == nil {
		out.ExtractedText = []string{}
	}
	if out.ExtractedNumbers == nil {
		out.ExtractedNumbers = []string{}
	}
	return out, nil
}

func (s *Service) GraphicAnalysis(ctx context.Context, img imaging.Image) (GraphicAnalysis, error) {
	if err := requireImage("graphic", &img); err != nil {
		return GraphicAnalysis{}, err
	}
	req := s.singleImageRequest(graphicAnalysisPrompt, "Analyze this graphic and extract its data and design elements according to the schema.", img)
	req.Schema = graphicAnalysisSchema
	out, err := complete[GraphicAnalysis](ctx, s, "graphic_analysis", req)
	if err != nil {
		return GraphicAnalysis{}, err
	}
	if out.DataPoints == nil {
		out.DataPoints = []DataPoint{}
	}
	if out.KeyTakeaways == nil {
		out.KeyTakeaways = []string{}
	}
	return out, nil
}
