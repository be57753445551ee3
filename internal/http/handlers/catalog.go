package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptstudio/internal/catalog"
	"promptstudio/internal/domain"
)

func (a *App) CatalogOptions(w http.ResponseWriter, r *http.Request) {
	a.ok(w, map[string]any{"groups": catalog.Groups()})
}

func (a *App) CatalogGroup(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	g, ok := catalog.Find(key)
	if !ok {
		a.fail(w, r, fmt.Errorf("%w: option group %q", domain.ErrNotFound, key))
		return
	}
	a.ok(w, g)
}

func (a *App) CatalogPalettes(w http.ResponseWriter, r *http.Request) {
	a.ok(w, map[string]any{
		"palettes":     catalog.Palettes(),
		"combinations": catalog.Combinations(),
	})
}
