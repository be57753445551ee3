package handlers

import (
	"fmt"
	"net/http"

	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
)

// batchImages parses the form and returns the uploads under "images" (or a
// single "image").
func (a *App) batchImages(w http.ResponseWriter, r *http.Request) ([]imaging.Image, error) {
	if err := a.parseMultipart(w, r); err != nil {
		return nil, err
	}
	images, err := formImages(r, "images", "image")
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", domain.ErrInvalidInput)
	}
	return images, nil
}

func (a *App) Movement(w http.ResponseWriter, r *http.Request) {
	images, err := a.batchImages(w, r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	results := a.Studio.MovementBatch(r.Context(), images, formBool(r, "includeLight"))
	a.ok(w, map[string]any{"results": results})
}

func (a *App) AdvancedMovement(w http.ResponseWriter, r *http.Request) {
	images, err := a.batchImages(w, r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	results := a.Studio.AdvancedMovementBatch(r.Context(), images, formBool(r, "includeLight"))
	a.ok(w, map[string]any{"results": results})
}
