package routes

import (
	"log/slog"
	"net/http"

	"go-westeros/internal/realtime/services"
	"go-westeros/pkg/middleware"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browsers send the page origin; the session token is the real gate.
		return true
	},
}

// Module represents the realtime routes module
type Module struct {
	hub  *services.Hub
	auth *middleware.SessionAuth
}

// NewModule creates a new realtime routes module
func NewModule(hub *services.Hub, auth *middleware.SessionAuth) *Module {
	return &Module{
		hub:  hub,
		auth: auth,
	}
}

// HandleConnect upgrades the request to a WebSocket and joins the
// caller's realm feed. The session token comes from headers or, for
// browser WebSocket clients that cannot set headers, a `token` query
// parameter.
func (m *Module) HandleConnect(w http.ResponseWriter, r *http.Request) {
	claims, err := m.auth.ValidateAuthFromHeaders(r.Header.Get("Authorization"), r.Header.Get("Cookie"))
	if err != nil {
		if token := r.URL.Query().Get("token"); token != "" {
			claims, err = m.auth.ValidateToken(token)
		}
		if err != nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	m.hub.Add(claims.RealmKey, conn)

	// Reader loop: the feed is one-way, but reading drains control frames
	// and detects the close.
	go func() {
		defer m.hub.Remove(claims.RealmKey, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
