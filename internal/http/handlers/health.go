package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TooManyRequests answers requests rejected by the rate limiter.
func (a *App) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	a.error(w, r, http.StatusTooManyRequests, codeRateLimited, "")
}
