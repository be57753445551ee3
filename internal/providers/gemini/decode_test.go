package gemini

import (
	"errors"
	"testing"

	"google.golang.org/genai"

	"promptstudio/internal/domain"
)

type promptPayload struct {
	Prompt string `json:"prompt"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"prompt":"orbit"}`, "orbit"},
		{"fenced", "```json\n{\"prompt\":\"macro slide\"}\n```", "macro slide"},
		{"prose", "Here you go: {\"prompt\":\"crane reveal\"} hope it helps", "crane reveal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON[promptPayload](tt.raw)
			if err != nil {
				t.Fatalf("DecodeJSON returned error: %v", err)
			}
			if got.Prompt != tt.want {
				t.Fatalf("Prompt = %q, want %q", got.Prompt, tt.want)
			}
		})
	}
}

func TestDecodeJSONArray(t *testing.T) {
	got, err := DecodeJSON[[]map[string]any]("```\n[{\"scene_id\":\"S1\"},{\"scene_id\":\"S2\"}]\n```")
	if err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}
	if len(got) != 2 || got[1]["scene_id"] != "S2" {
		t.Fatalf("DecodeJSON() = %v", got)
	}
}

func TestDecodeJSONFailure(t *testing.T) {
	for _, raw := range []string{"", "not json at all", `{"prompt":`} {
		_, err := DecodeJSON[promptPayload](raw)
		if !errors.Is(err, domain.ErrMalformedResponse) {
			t.Fatalf("DecodeJSON(%q) error = %v, want ErrMalformedResponse", raw, err)
		}
		if err.Error() != "JSON Parsing Error: The AI returned a response that was not valid JSON." {
			t.Fatalf("DecodeJSON(%q) message = %q", raw, err.Error())
		}
	}
}

func TestObjectKeepsOrderAndRequired(t *testing.T) {
	s := Object(Prop("b", String("second")), Prop("a", StringArray("first")))
	if s.Type != genai.TypeObject {
		t.Fatalf("Type = %v", s.Type)
	}
	if len(s.PropertyOrdering) != 2 || s.PropertyOrdering[0] != "b" {
		t.Fatalf("PropertyOrdering = %v", s.PropertyOrdering)
	}
	if len(s.Required) != 2 {
		t.Fatalf("Required = %v", s.Required)
	}
	if s.Properties["a"].Items == nil {
		t.Fatalf("array items missing")
	}
	if loose := Loose(Prop("x", String(""))); loose.Required != nil {
		t.Fatalf("Loose().Required = %v", loose.Required)
	}
}
