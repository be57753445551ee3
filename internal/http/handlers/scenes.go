package handlers

import (
	"net/http"

	"promptstudio/internal/studio"
)

func (a *App) Scenes(w http.ResponseWriter, r *http.Request) {
	var req studio.SceneOptions
	if err := a.decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	scenes, err := a.Studio.Scenes(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]any{"scenes": scenes})
}

func (a *App) MalayVariants(w http.ResponseWriter, r *http.Request) {
	var req studio.MalayOptions
	if err := a.decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	prompts, err := a.Studio.MalayVariants(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]any{"prompts": prompts})
}
