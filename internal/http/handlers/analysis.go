package handlers

import (
	"net/http"

	"promptstudio/internal/imaging"
	"promptstudio/internal/studio"
)

// singleImage parses the form and returns the validated "image" upload.
func (a *App) singleImage(w http.ResponseWriter, r *http.Request) (imaging.Image, bool) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return imaging.Image{}, false
	}
	img, err := formValidImage(r, "image")
	if err != nil {
		a.fail(w, r, err)
		return imaging.Image{}, false
	}
	return img, true
}

func (a *App) StyleAnalyze(w http.ResponseWriter, r *http.Request) {
	img, ok := a.singleImage(w, r)
	if !ok {
		return
	}
	prompt, err := a.Studio.StyleAnalysis(r.Context(), img)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"prompt": prompt})
}

func (a *App) StyleTransfer(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	product, err := formValidImage(r, "product")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	style, err := formValidImage(r, "style")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	prompt, err := a.Studio.StyleTransfer(r.Context(), product, style)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"prompt": prompt})
}

func (a *App) BackgroundAnalyze(w http.ResponseWriter, r *http.Request) {
	img, ok := a.singleImage(w, r)
	if !ok {
		return
	}
	out, err := a.Studio.BackgroundSet(r.Context(), img)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, out)
}

func (a *App) Poster(w http.ResponseWriter, r *http.Request) {
	if err := a.parseMultipart(w, r); err != nil {
		a.fail(w, r, err)
		return
	}
	style, err := formValidImage(r, "style")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	person, err := optionalImage(r, "person")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if person != nil {
		if err := imaging.ValidateUpload(person.Name, person.MIME); err != nil {
			a.fail(w, r, err)
			return
		}
	}
	prompt, err := a.Studio.Poster(r.Context(), studio.PosterInput{
		Style:       style,
		Description: r.FormValue("description"),
		Person:      person,
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"prompt": prompt})
}

func (a *App) InfoExtract(w http.ResponseWriter, r *http.Request) {
	img, ok := a.singleImage(w, r)
	if !ok {
		return
	}
	out, err := a.Studio.InfoExtract(r.Context(), img)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, out)
}

func (a *App) GraphicAnalyze(w http.ResponseWriter, r *http.Request) {
	img, ok := a.singleImage(w, r)
	if !ok {
		return
	}
	out, err := a.Studio.GraphicAnalysis(r.Context(), img)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, out)
}
