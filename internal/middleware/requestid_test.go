package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "missing", incoming: ""},
		{name: "valid", incoming: "web-1699999999.42", keep: true},
		{name: "newline", incoming: "abc\nforged=1"},
		{name: "too long", incoming: strings.Repeat("a", 65)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if got := rr.Header().Get(RequestIDHeader); got != seen {
				t.Fatalf("header = %q, context = %q", got, seen)
			}
			if tc.keep {
				if seen != tc.incoming {
					t.Fatalf("request id = %q, want %q", seen, tc.incoming)
				}
				return
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Fatalf("request id %q is not a generated uuid", seen)
			}
		})
	}
}
