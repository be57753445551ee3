package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"promptstudio/internal/middleware"
	"promptstudio/internal/providers/gemini"
)

const wsWriteWait = 10 * time.Second

type assistantRequest struct {
	Messages []gemini.Message `json:"messages"`
}

// wsEvent is every frame the websocket endpoints send.
type wsEvent struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	Completed int    `json:"completed,omitempty"`
	Total     int    `json:"total,omitempty"`
	BatchID   string `json:"batchId,omitempty"`
	// DownloadURL points at the stored archive of a finished batch.
	DownloadURL string    `json:"downloadUrl,omitempty"`
	Results     any       `json:"results,omitempty"`
	Error       *apiError `json:"error,omitempty"`
}

func (a *App) Assistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := a.decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	reply, err := a.Studio.AssistantReply(r.Context(), req.Messages)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, map[string]string{"reply": reply})
}

// AssistantWS streams replies over a websocket. Each client frame carries the
// full history; the server answers with "chunk" frames then one "done".
func (a *App) AssistantWS(w http.ResponseWriter, r *http.Request) {
	conn, err := a.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("assistant websocket upgrade failed")
		return
	}
	defer conn.Close()

	locale := middleware.LocaleFromContext(r.Context())
	for {
		var req assistantRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				a.Logger.Warn().Err(err).Msg("assistant websocket read failed")
			}
			return
		}
		err := a.Studio.Assistant(r.Context(), req.Messages, func(chunk string) error {
			return writeEvent(conn, wsEvent{Type: "chunk", Text: chunk})
		})
		if err != nil {
			if werr := writeEvent(conn, errorEvent(locale, err)); werr != nil {
				return
			}
			continue
		}
		if err := writeEvent(conn, wsEvent{Type: "done"}); err != nil {
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, ev wsEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(ev)
}

func errorEvent(locale string, err error) wsEvent {
	_, code := classify(err)
	return wsEvent{Type: "error", Error: &apiError{Code: code, Message: message(locale, code), Detail: err.Error()}}
}

// watchClose cancels the returned context once the peer closes the socket.
// It owns the read side of conn until then.
func watchClose(parent context.Context, conn *websocket.Conn) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
	return ctx, cancel
}
