package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/infra"
)

const (
	DefaultModel     = "gemini-2.5-pro"
	DefaultFastModel = "gemini-2.5-flash"
)

// Part is one element of a user turn: text or an inline image.
type Part struct {
	Text  string
	Image *imaging.Image
}

func Text(s string) Part { return Part{Text: s} }

func Inline(img imaging.Image) Part { return Part{Image: &img} }

// Request is a single-turn completion. Schema, when set, constrains the
// response to JSON of that shape; JSON alone only sets the response MIME type.
type Request struct {
	Model       string
	System      string
	Parts       []Part
	Schema      *genai.Schema
	JSON        bool
	Temperature *float32
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is a multi-turn conversation whose answer is streamed.
type ChatRequest struct {
	Model    string
	System   string
	Messages []Message
}

// Completer is the AI completion service the studio tabs call.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Stream(ctx context.Context, req ChatRequest, onChunk func(string) error) error
}

type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client implements Completer on the Gemini API.
type Client struct {
	models *genai.Models
	model  string
	logger *infra.Logger
}

var _ Completer = (*Client)(nil)

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if base := strings.TrimRight(opts.BaseURL, "/"); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Client{models: client.Models, model: model, logger: logger}, nil
}

// Model returns the default model identifier.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	model := c.pick(req.Model)
	contents := []*genai.Content{genai.NewContentFromParts(toParts(req.Parts), genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(req.System),
		Temperature:       req.Temperature,
	}
	if req.Schema != nil || req.JSON {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}

	resp, err := c.models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		c.logger.Warn().Err(err).Str("model", model).Msg("gemini: generate content failed")
		return "", &Error{Err: err}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: %s returned no text", domain.ErrEmptyResponse, model)
	}
	c.logger.Debug().
		Str("model", model).
		Int("parts", len(req.Parts)).
		Int("chars", len(text)).
		Msg("gemini: completion received")
	return text, nil
}

func (c *Client) Stream(ctx context.Context, req ChatRequest, onChunk func(string) error) error {
	model := c.pick(req.Model)
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	if len(contents) == 0 {
		return fmt.Errorf("%w: conversation is empty", domain.ErrInvalidInput)
	}
	cfg := &genai.GenerateContentConfig{SystemInstruction: systemInstruction(req.System)}

	chunks := 0
	for resp, err := range c.models.GenerateContentStream(ctx, model, contents, cfg) {
		if err != nil {
			c.logger.Warn().Err(err).Str("model", model).Int("chunks", chunks).Msg("gemini: stream failed")
			return &Error{Err: err}
		}
		text := resp.Text()
		if text == "" {
			continue
		}
		chunks++
		if err := onChunk(text); err != nil {
			return err
		}
	}
	if chunks == 0 {
		return fmt.Errorf("%w: %s streamed no text", domain.ErrEmptyResponse, model)
	}
	return nil
}

func (c *Client) pick(model string) string {
	if m := strings.TrimSpace(model); m != "" {
		return m
	}
	return c.model
}

func systemInstruction(text string) *genai.Content {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return genai.NewContentFromText(text, genai.RoleUser)
}

func toParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		switch {
		case p.Image != nil && len(p.Image.Data) > 0:
			out = append(out, genai.NewPartFromBytes(p.Image.Data, p.Image.MIME))
		case strings.TrimSpace(p.Text) != "":
			out = append(out, genai.NewPartFromText(p.Text))
		}
	}
	return out
}

// Error is a failed call to the completion service.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	var apiErr genai.APIError
	if errors.As(e.Err, &apiErr) && apiErr.Message != "" {
		return "API Error: " + apiErr.Message
	}
	return "API Error: " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{domain.ErrProviderFailure, e.Err}
}
