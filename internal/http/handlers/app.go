package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"promptstudio/internal/domain"
	"promptstudio/internal/infra"
	"promptstudio/internal/middleware"
	"promptstudio/internal/studio"
)

// ArchiveStore keeps finished batch archives for later download.
type ArchiveStore interface {
	Write(ctx context.Context, key string, data []byte) (string, error)
	Read(ctx context.Context, key string) ([]byte, error)
}

type App struct {
	Studio *studio.Service
	// Archives is optional; without it batches are not downloadable later.
	Archives ArchiveStore
	Logger   *infra.Logger
	// MaxUpload caps the multipart body size in bytes.
	MaxUpload int64
	// ImageToken is used when an image batch request carries no token.
	ImageToken string
	Upgrader   websocket.Upgrader
}

type Options struct {
	Studio         *studio.Service
	Archives       ArchiveStore
	Logger         *infra.Logger
	MaxUpload      int64
	ImageToken     string
	AllowedOrigins []string
}

func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	maxUpload := opts.MaxUpload
	if maxUpload <= 0 {
		maxUpload = 20 << 20
	}
	return &App{
		Studio:     opts.Studio,
		Archives:   opts.Archives,
		Logger:     logger,
		MaxUpload:  maxUpload,
		ImageToken: opts.ImageToken,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(opts.AllowedOrigins),
		},
	}
}

// originChecker mirrors the CORS allow list for websocket upgrades.
func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[originKey(o)] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[originKey(origin)]
		return ok
	}
}

func originKey(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}

type envelope struct {
	Data any `json:"data"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) ok(w http.ResponseWriter, v any) {
	a.json(w, http.StatusOK, envelope{Data: v})
}

func (a *App) error(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, status, map[string]apiError{"error": {
		Code:    code,
		Message: message(locale, code),
		Detail:  detail,
	}})
}

// fail maps a service error onto a status code and error code.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	event := a.Logger.Warn()
	if status >= http.StatusInternalServerError {
		event = a.Logger.Error()
	}
	event.Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("request failed")
	a.error(w, r, status, code, err.Error())
}

func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, codePayloadTooLarge
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, codeInvalidImage
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, codeMissingToken
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway, codeMalformedResponse
	case errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusBadGateway, codeEmptyResponse
	case errors.Is(err, domain.ErrProviderFailure):
		return http.StatusBadGateway, codeUpstream
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
