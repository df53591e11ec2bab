// Package socket serves the live catalog channel: the browser sends
// filter, search, sort and modal interactions and receives every
// re-rendered view.
package socket

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"folio.dev/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// public, read-only catalog data
		return true
	},
}

// Handler upgrades requests to live catalog connections
type Handler struct {
	sessions *services.SessionManager
	debounce time.Duration
}

// NewHandler creates a new Handler. Search messages arriving within
// debounce of each other produce a single render.
func NewHandler(sessions *services.SessionManager, debounce time.Duration) *Handler {
	return &Handler{sessions: sessions, debounce: debounce}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(conn, h.debounce)
	client.ctrl = h.sessions.Detached(client)

	go client.WritePump()

	v := client.ctrl.View()
	client.Render(v)

	client.ReadPump()
}
