package realtime

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rubiojr/folio/pkg/log"
	"github.com/rubiojr/folio/pkg/metrics"
	"github.com/rubiojr/folio/pkg/page"
)

// Handler upgrades requests to WebSocket sessions.
type Handler struct {
	ctrl     *page.Controller
	renderer Renderer
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewHandler returns a handler serving sessions backed by ctrl. renderer
// may be nil, in which case messages carry render instructions only.
func NewHandler(ctrl *page.Controller, renderer Renderer) *Handler {
	return &Handler{
		ctrl:     ctrl,
		renderer: renderer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		logger: log.ForService("realtime"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		h.logger.Warnf("websocket upgrade failed: %v", err)
		return
	}

	session := newSession(r.Context(), conn, h.ctrl, h.renderer)
	h.logger.Debugf("session %s opened from %s", session.ID, r.RemoteAddr)

	metrics.WebSocketSessions.Inc()
	defer metrics.WebSocketSessions.Dec()

	session.run()
	h.logger.Debugf("session %s closed", session.ID)
}
