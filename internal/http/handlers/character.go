package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"promptstudio/internal/character"
	"promptstudio/internal/domain"
)

func (a *App) CharacterPrompt(w http.ResponseWriter, r *http.Request) {
	var d character.Descriptor
	if err := a.decodeJSON(w, r, &d); err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"prompt": a.Studio.CharacterPrompt(d)})
}

// CharacterAnalyze fills the form from an uploaded photo. The optional
// "form" field carries the current form as JSON; analysis values win.
func (a *App) CharacterAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	img, err := formImage(r, "image")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var form character.Descriptor
	if raw := strings.TrimSpace(r.FormValue("form")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form); err != nil {
			a.fail(w, r, fmt.Errorf("%w: form is not valid JSON: %v", domain.ErrInvalidInput, err))
			return
		}
	}
	d, err := a.Studio.AnalyzeCharacter(r.Context(), img, form)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]any{"descriptor": d, "prompt": a.Studio.CharacterPrompt(d)})
}
