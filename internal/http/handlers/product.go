package handlers

import (
	"net/http"

	"promptstudio/internal/studio"
)

func (a *App) FlowComposite(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	contextImg, err := formValidImage(r, "context")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	product, err := formValidImage(r, "product")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	out, err := a.Studio.GoogleFlowComposite(r.Context(), contextImg, product)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, out)
}

func (a *App) ProductAction(w http.ResponseWriter, r *http.Request) {
	images, err := a.batchImages(w, r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	results, err := a.Studio.ProductActionBatch(r.Context(), images, studio.ProductAction{
		Action: r.FormValue("action"),
		Style:  r.FormValue("style"),
		Angle:  r.FormValue("angle"),
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]any{"results": results})
}

func (a *App) ProductBackground(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	img, err := formValidImage(r, "image")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	prompt, err := a.Studio.ProductBackground(r.Context(), img, r.FormValue("style"), r.FormValue("keywords"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"prompt": prompt})
}

func (a *App) Viral(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	img, err := formValidImage(r, "image")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	prompts, err := a.Studio.ViralBatch(r.Context(), img, formInt(r, "count", 5))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]any{"prompts": prompts})
}

func (a *App) Collage(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	img, err := formValidImage(r, "image")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	prompt, err := a.Studio.Collage(r.Context(), img, formInt(r, "count", 0))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"prompt": prompt})
}
