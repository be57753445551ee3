package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptstudio/internal/http/handlers"
	"promptstudio/internal/infra"
	"promptstudio/internal/providers/gemini"
	"promptstudio/internal/studio"
)

type nopCompleter struct{}

func (nopCompleter) Complete(ctx context.Context, req gemini.Request) (string, error) {
	return `{"prompts": ["one"]}`, nil
}

func (nopCompleter) Stream(ctx context.Context, req gemini.ChatRequest, onChunk func(string) error) error {
	return onChunk("hi")
}

func newTestRouter(limit int) http.Handler {
	return newTestRouterWith(Options{RateLimitPerMin: limit})
}

func newTestRouterWith(opts Options) http.Handler {
	logger := infra.NewLogger("test")
	svc := studio.NewService(studio.Options{Completer: nopCompleter{}})
	app := handlers.NewApp(handlers.Options{Studio: svc, Logger: &logger, AllowedOrigins: []string{"*"}})
	opts.Logger = logger
	opts.CORSOrigins = []string{"*"}
	opts.DefaultLocale = "en"
	return NewRouter(app, opts)
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(0)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d, want 404", rr.Code)
	}
}

func TestRouterServesOpenAPI(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(0).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/openapi.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi.json is not valid JSON: %v", err)
	}
	if _, ok := doc["paths"]; !ok {
		t.Fatalf("openapi.json has no paths")
	}
}

func TestRouterRateLimitsAIRoutesOnly(t *testing.T) {
	router := newTestRouter(1)
	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "ms-MY")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	if rr := post("/v1/scenes", `{"description": "a rainy night market"}`); rr.Code != http.StatusOK {
		t.Fatalf("first request status = %d, body %s", rr.Code, rr.Body)
	}
	rr := post("/v1/scenes", `{"description": "a rainy night market"}`)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "60" {
		t.Fatalf("Retry-After = %q, want 60", rr.Header().Get("Retry-After"))
	}
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "rate_limited" || !strings.HasPrefix(payload.Error.Message, "Terlalu banyak") {
		t.Fatalf("error = %+v", payload.Error)
	}

	for i := 0; i < 3; i++ {
		if rr := post("/v1/character/prompt", `{"name": "Aminah"}`); rr.Code != http.StatusOK {
			t.Fatalf("character prompt status = %d, want 200", rr.Code)
		}
	}
}

func TestRouterForwardedForNeedsTrustedProxy(t *testing.T) {
	scenes := func(router http.Handler, forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/scenes", strings.NewReader(`{"description": "a rainy night market"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", forwarded)
		req.RemoteAddr = "198.51.100.10:4321"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	direct := newTestRouterWith(Options{RateLimitPerMin: 1})
	if code := scenes(direct, "203.0.113.1"); code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if code := scenes(direct, "203.0.113.2"); code != http.StatusTooManyRequests {
		t.Fatalf("rotated X-Forwarded-For status = %d, want 429", code)
	}

	proxied := newTestRouterWith(Options{RateLimitPerMin: 1, TrustProxy: true})
	if code := scenes(proxied, "203.0.113.1"); code != http.StatusOK {
		t.Fatalf("proxied first client status = %d, want 200", code)
	}
	if code := scenes(proxied, "203.0.113.2"); code != http.StatusOK {
		t.Fatalf("proxied second client status = %d, want 200", code)
	}
	if code := scenes(proxied, "203.0.113.1"); code != http.StatusTooManyRequests {
		t.Fatalf("proxied repeat client status = %d, want 429", code)
	}
}

func TestRouterServesDocsPage(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(0).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/docs", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rr.Body.String(), `spec-url="`+handlers.OpenAPIPath+`"`) {
		t.Fatalf("docs page does not load %s", handlers.OpenAPIPath)
	}
}
