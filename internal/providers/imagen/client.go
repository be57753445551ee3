// Package imagen calls the Imagen :predict endpoint with a caller supplied
// bearer token.
package imagen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/infra"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "imagen-3.0-generate-001"
)

// ErrNoImage is returned when a successful response carries no image bytes.
var ErrNoImage = &Error{
	Message: "No image data found in response. Token might be expired or invalid.",
	Kind:    domain.ErrEmptyResponse,
}

type Options struct {
	BaseURL        string
	Model          string
	AspectRatio    string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Generator turns one prompt into one image.
type Generator interface {
	Generate(ctx context.Context, token, prompt string) (imaging.Image, error)
}

type Client struct {
	baseURL     string
	model       string
	aspectRatio string
	httpClient  *http.Client
	logger      *infra.Logger
}

var _ Generator = (*Client)(nil)

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParams     `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParams struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	} `json:"predictions"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	aspect := strings.TrimSpace(opts.AspectRatio)
	if aspect == "" {
		aspect = "1:1"
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Client{
		baseURL:     baseURL,
		model:       model,
		aspectRatio: aspect,
		httpClient:  httpClient,
		logger:      logger,
	}
}

var bearerPrefix = regexp.MustCompile(`(?i)^bearer(\s+|$)`)

// CleanToken strips a pasted "Bearer " prefix and surrounding space.
func CleanToken(token string) string {
	return strings.TrimSpace(bearerPrefix.ReplaceAllString(strings.TrimSpace(token), ""))
}

func (c *Client) Generate(ctx context.Context, token, prompt string) (imaging.Image, error) {
	token = CleanToken(token)
	if token == "" {
		return imaging.Image{}, domain.ErrMissingToken
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return imaging.Image{}, fmt.Errorf("%w: prompt is required", domain.ErrInvalidInput)
	}

	body, err := json.Marshal(predictRequest{
		Instances:  []predictInstance{{Prompt: prompt}},
		Parameters: predictParams{SampleCount: 1, AspectRatio: c.aspectRatio},
	})
	if err != nil {
		return imaging.Image{}, fmt.Errorf("imagen: encode request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:predict", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return imaging.Image{}, fmt.Errorf("imagen: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return imaging.Image{}, fmt.Errorf("%w: imagen: %w", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return imaging.Image{}, fmt.Errorf("%w: imagen: read response: %w", domain.ErrProviderFailure, err)
	}
	if resp.StatusCode >= 300 {
		return imaging.Image{}, &Error{
			Status:  resp.StatusCode,
			Message: statusMessage(resp.StatusCode, raw),
			Kind:    domain.ErrProviderFailure,
		}
	}

	var decoded predictResponse
	if err := json.Unmarshal(raw, &decoded); err != nil || len(decoded.Predictions) == 0 ||
		decoded.Predictions[0].BytesBase64Encoded == "" {
		return imaging.Image{}, ErrNoImage
	}
	p := decoded.Predictions[0]
	mimeType := p.MIMEType
	if mimeType == "" {
		mimeType = imaging.MIMEPNG
	}
	img, err := imaging.FromBase64("", mimeType, p.BytesBase64Encoded)
	if err != nil {
		return imaging.Image{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	c.logger.Debug().
		Str("model", c.model).
		Int("bytes", len(img.Data)).
		Msg("imagen: generated image")
	return img, nil
}

func statusMessage(status int, raw []byte) string {
	var detail errorResponse
	if err := json.Unmarshal(raw, &detail); err != nil {
		return fmt.Sprintf("API Error %d: %s", status, strings.TrimSpace(string(raw)))
	}
	if detail.Error.Message != "" {
		return detail.Error.Message
	}
	return fmt.Sprintf("API Error %d", status)
}

// Error carries the user facing message of a failed generation. Status is
// zero when the endpoint answered 2xx.
type Error struct {
	Status  int
	Message string
	Kind    error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }
