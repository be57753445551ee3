package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerRecordsAccessLine(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "ok", path: "/v1/scenes", status: http.StatusOK, wantLevel: "info"},
		{name: "client error", path: "/v1/poster", status: http.StatusBadRequest, wantLevel: "warn"},
		{name: "upstream failure", path: "/v1/viral", status: http.StatusBadGateway, wantLevel: "error"},
		{name: "health", path: "/v1/healthz", status: http.StatusOK, wantLevel: "debug"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
			handler := RequestID(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("hello"))
			})))

			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			req.Header.Set("X-Request-ID", "req-42")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			var line struct {
				Level     string `json:"level"`
				RequestID string `json:"request_id"`
				Bytes     int    `json:"bytes"`
				Message   string `json:"message"`
			}
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("decode log line %q: %v", buf.String(), err)
			}
			if line.Level != tc.wantLevel {
				t.Fatalf("level = %q, want %q", line.Level, tc.wantLevel)
			}
			if line.RequestID != "req-42" || line.Bytes != 5 {
				t.Fatalf("log line = %+v", line)
			}
			if want := fmt.Sprintf("POST %s %d", tc.path, tc.status); line.Message != want {
				t.Fatalf("message = %q, want %q", line.Message, want)
			}
		})
	}
}
