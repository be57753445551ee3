package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
)

// parseMultipart bounds the body and parses the form. Files above the
// in-memory threshold spill to disk and are removed by the server.
func (a *App) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUpload)
	if err := r.ParseMultipartForm(a.MaxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: expected a multipart form: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func readUpload(fh *multipart.FileHeader) (imaging.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return imaging.Image{}, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return imaging.Image{}, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, fh.Filename, err)
	}
	return imaging.Image{
		Name: fh.Filename,
		MIME: imaging.DetectMIME(fh.Header.Get("Content-Type"), data),
		Data: data,
	}, nil
}

// formImages returns every file uploaded under the given fields, in order.
func formImages(r *http.Request, fields ...string) ([]imaging.Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var out []imaging.Image
	for _, field := range fields {
		for _, fh := range r.MultipartForm.File[field] {
			img, err := readUpload(fh)
			if err != nil {
				return nil, err
			}
			out = append(out, img)
		}
	}
	return out, nil
}

// formImage returns the single upload for field; it is an error if the
// field is missing.
func formImage(r *http.Request, field string) (imaging.Image, error) {
	img, err := optionalImage(r, field)
	if err != nil {
		return imaging.Image{}, err
	}
	if img == nil {
		return imaging.Image{}, fmt.Errorf("%w: %s image is required", domain.ErrInvalidInput, field)
	}
	return *img, nil
}

func optionalImage(r *http.Request, field string) (*imaging.Image, error) {
	images, err := formImages(r, field)
	if err != nil || len(images) == 0 {
		return nil, err
	}
	return &images[0], nil
}

// formValidImage is formImage plus the JPEG/PNG check.
func formValidImage(r *http.Request, field string) (imaging.Image, error) {
	img, err := formImage(r, field)
	if err != nil {
		return imaging.Image{}, err
	}
	if err := imaging.ValidateUpload(img.Name, img.MIME); err != nil {
		return imaging.Image{}, err
	}
	return img, nil
}

func formBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.FormValue(key)))
	return err == nil && v
}

func formInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return fallback
	}
	return v
}

func (a *App) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUpload)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: invalid payload: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
