package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"promptstudio/internal/batch"
	"promptstudio/internal/catalog"
)

func TestCharacterPrompt(t *testing.T) {
	app := newTestApp(nil, nil)
	body := `{"name": "Aminah", "gender": "female", "hairStyle": "hijab", "hijabColor": "soft beige"}`
	rr := httptest.NewRecorder()
	app.CharacterPrompt(rr, httptest.NewRequest(http.MethodPost, "/v1/character/prompt", strings.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var out struct {
		Prompt string `json:"prompt"`
	}
	decodeData(t, rr, &out)
	if !strings.Contains(out.Prompt, "Aminah") || !strings.Contains(out.Prompt, "female") {
		t.Fatalf("prompt = %q", out.Prompt)
	}
}

func TestCharacterPromptRejectsInvalidJSON(t *testing.T) {
	app := newTestApp(nil, nil)
	rr := httptest.NewRecorder()
	app.CharacterPrompt(rr, httptest.NewRequest(http.MethodPost, "/v1/character/prompt", strings.NewReader("{")))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestMovementBatchReportsPerFileFailures(t *testing.T) {
	app := newTestApp(&stubCompleter{reply: `{"prompt": "slow push-in"}`}, nil)
	req := multipartRequest(t, "/v1/movement", map[string]string{"includeLight": "true"},
		upload{"images", "ring.png", "image/png", pngBytes},
		upload{"images", "notes.gif", "image/gif", []byte("GIF89a")},
	)
	rr := httptest.NewRecorder()
	app.Movement(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var out struct {
		Results []batch.Result[string] `json:"results"`
	}
	decodeData(t, rr, &out)
	if len(out.Results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(out.Results))
	}
	if out.Results[0].Label != "ring.png" || out.Results[0].Value != "slow push-in" {
		t.Fatalf("results[0] = %+v", out.Results[0])
	}
	if !strings.Contains(out.Results[1].Error, "'notes.gif' is not a valid image type.") {
		t.Fatalf("results[1].Error = %q", out.Results[1].Error)
	}
}

func TestMovementRequiresImages(t *testing.T) {
	app := newTestApp(&stubCompleter{}, nil)
	rr := httptest.NewRecorder()
	app.Movement(rr, multipartRequest(t, "/v1/movement", map[string]string{"includeLight": "false"}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestStyleAnalyzeRejectsUnsupportedImage(t *testing.T) {
	stub := &stubCompleter{reply: `{"prompt": "x"}`}
	app := newTestApp(stub, nil)
	rr := httptest.NewRecorder()
	app.StyleAnalyze(rr, multipartRequest(t, "/v1/style/analyze", nil, upload{"image", "a.webp", "image/webp", []byte("RIFF")}))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeError(t, rr); got.Code != codeInvalidImage {
		t.Fatalf("code = %q, want %q", got.Code, codeInvalidImage)
	}
	if stub.calls != 0 {
		t.Fatalf("completer called %d times, want 0", stub.calls)
	}
}

func TestPosterWithOptionalPerson(t *testing.T) {
	app := newTestApp(&stubCompleter{reply: `{"prompt": "bold poster"}`}, nil)
	req := multipartRequest(t, "/v1/poster", map[string]string{"description": "Hari Raya sale"},
		upload{"style", "ref.jpg", "image/jpeg", []byte{0xff, 0xd8, 0xff}},
		upload{"person", "me.png", "image/png", pngBytes},
	)
	rr := httptest.NewRecorder()
	app.Poster(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var out map[string]string
	decodeData(t, rr, &out)
	if out["prompt"] != "bold poster" {
		t.Fatalf("prompt = %q", out["prompt"])
	}
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	app := newTestApp(&stubCompleter{reply: "not json at all"}, nil)
	rr := httptest.NewRecorder()
	app.InfoExtract(rr, multipartRequest(t, "/v1/info/extract", nil, upload{"image", "r.png", "image/png", pngBytes}))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	got := decodeError(t, rr)
	if got.Code != codeMalformedResponse || !strings.Contains(got.Detail, "JSON Parsing Error") {
		t.Fatalf("error = %+v", got)
	}
}

func TestScenes(t *testing.T) {
	app := newTestApp(&stubCompleter{reply: `{"scene_id": "S1", "duration_sec": 8}`}, nil)
	rr := httptest.NewRecorder()
	body := `{"description": "a cat opens a kedai runcit", "numScenes": 1, "tiktokFormat": true}`
	app.Scenes(rr, httptest.NewRequest(http.MethodPost, "/v1/scenes", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var out struct {
		Scenes []map[string]any `json:"scenes"`
	}
	decodeData(t, rr, &out)
	if len(out.Scenes) != 1 || out.Scenes[0]["scene_id"] != "S1" {
		t.Fatalf("scenes = %+v", out.Scenes)
	}
}

func TestCatalogGroup(t *testing.T) {
	app := newTestApp(nil, nil)
	r := chi.NewRouter()
	r.Get("/v1/catalog/options/{key}", app.CatalogGroup)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/catalog/options/hair_style", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var g catalog.Group
	decodeData(t, rr, &g)
	if g.Key != "hair_style" || len(g.Options) != len(catalog.HairStyle) {
		t.Fatalf("group = %+v", g)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/catalog/options/shoes", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestAssistantAggregatesStream(t *testing.T) {
	app := newTestApp(&stubCompleter{chunks: []string{"**Prompt**\n", "```a neon city```"}}, nil)
	body := bytes.NewBufferString(`{"messages": [{"role": "user", "text": "give me a city prompt"}]}`)
	rr := httptest.NewRecorder()
	app.Assistant(rr, httptest.NewRequest(http.MethodPost, "/v1/assistant", body))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	var out map[string]string
	decodeData(t, rr, &out)
	if out["reply"] != "**Prompt**\n```a neon city```" {
		t.Fatalf("reply = %q", out["reply"])
	}
}
