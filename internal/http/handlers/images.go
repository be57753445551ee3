package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptstudio/internal/batch"
	"promptstudio/internal/domain"
	"promptstudio/internal/imaging"
	"promptstudio/internal/middleware"
	"promptstudio/internal/studio"
	"promptstudio/pkg/zip"
)

type imageBatchRequest struct {
	Token string `json:"token"`
	// Prompts holds one prompt per line.
	Prompts string `json:"prompts"`
}

func (a *App) token(req imageBatchRequest, r *http.Request) string {
	if t := strings.TrimSpace(req.Token); t != "" {
		return t
	}
	if t := strings.TrimSpace(r.Header.Get("Authorization")); t != "" {
		return t
	}
	return a.ImageToken
}

func (a *App) runImageBatch(ctx context.Context, r *http.Request, req imageBatchRequest, progress batch.Progress) ([]batch.Result[imaging.Image], error) {
	return a.Studio.GenerateImages(ctx, a.token(req, r), req.Prompts, progress)
}

// ImagesBatch renders the prompts one after another. With ?format=zip the
// successful images are returned as an archive instead of JSON.
func (a *App) ImagesBatch(w http.ResponseWriter, r *http.Request) {
	var req imageBatchRequest
	if err := a.decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	results, err := a.runImageBatch(r.Context(), r, req, nil)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	batchID := uuid.NewString()
	if strings.EqualFold(r.URL.Query().Get("format"), "zip") {
		a.writeZip(w, r, batchID, results)
		return
	}
	resp := map[string]any{"batchId": batchID, "results": results}
	if url := a.storeArchive(r.Context(), batchID, results); url != "" {
		resp["downloadUrl"] = url
	}
	a.ok(w, resp)
}

func archiveKey(batchID string) string {
	return "batches/" + batchID + ".zip"
}

// storeArchive saves the successful images of a batch and returns the URL
// they can be downloaded from, or "" when nothing was stored.
func (a *App) storeArchive(ctx context.Context, batchID string, results []batch.Result[imaging.Image]) string {
	if a.Archives == nil {
		return ""
	}
	images := studio.Successful(results)
	if len(images) == 0 {
		return ""
	}
	data, err := zip.ArchiveAssets(zipAssets(images))
	if err == nil {
		_, err = a.Archives.Write(ctx, archiveKey(batchID), data)
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("batch_id", batchID).Msg("store image archive")
		return ""
	}
	return "/v1/images/batch/" + batchID + "/archive"
}

// ImagesArchive serves an archive stored by an earlier batch.
func (a *App) ImagesArchive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || a.Archives == nil {
		a.fail(w, r, fmt.Errorf("%w: unknown batch", domain.ErrNotFound))
		return
	}
	batchID := id.String()
	data, err := a.Archives.Read(r.Context(), archiveKey(batchID))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeZipHeaders(w, batchID)
	_, _ = w.Write(data)
}

func zipAssets(images []imaging.Image) []zip.Asset {
	assets := make([]zip.Asset, len(images))
	for i, img := range images {
		assets[i] = zip.Asset{Filename: img.Name, MIME: img.MIME, Data: img.Data}
	}
	return assets
}

func writeZipHeaders(w http.ResponseWriter, batchID string) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "images_"+batchID+".zip"))
	w.WriteHeader(http.StatusOK)
}

func (a *App) writeZip(w http.ResponseWriter, r *http.Request, batchID string, results []batch.Result[imaging.Image]) {
	images := studio.Successful(results)
	if len(images) == 0 {
		detail := "no images were generated"
		for _, res := range results {
			if res.Failed() {
				detail = res.Error
				break
			}
		}
		a.fail(w, r, fmt.Errorf("%w: %s", domain.ErrProviderFailure, detail))
		return
	}
	writeZipHeaders(w, batchID)
	if err := zip.Archive(w, zipAssets(images)); err != nil {
		a.Logger.Error().Err(err).Str("batch_id", batchID).Msg("write image archive")
	}
}

// ImagesBatchWS runs one batch per connection: the client sends the request
// frame, receives a "progress" frame per prompt and a final "result".
func (a *App) ImagesBatchWS(w http.ResponseWriter, r *http.Request) {
	conn, err := a.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("image batch websocket upgrade failed")
		return
	}
	defer conn.Close()

	locale := middleware.LocaleFromContext(r.Context())
	var req imageBatchRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = writeEvent(conn, errorEvent(locale, fmt.Errorf("%w: invalid payload: %v", domain.ErrInvalidInput, err)))
		return
	}

	ctx, cancel := watchClose(r.Context(), conn)
	defer cancel()

	batchID := uuid.NewString()
	results, err := a.runImageBatch(ctx, r, req, func(completed, total int) {
		_ = writeEvent(conn, wsEvent{Type: "progress", BatchID: batchID, Completed: completed, Total: total})
	})
	if err != nil {
		_ = writeEvent(conn, errorEvent(locale, err))
		return
	}
	_ = writeEvent(conn, wsEvent{
		Type:        "result",
		BatchID:     batchID,
		Results:     results,
		DownloadURL: a.storeArchive(ctx, batchID, results),
	})
}
