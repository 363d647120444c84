package handlers

import (
	"net/http"

	"artist_marketplace/internal/logger"
	"artist_marketplace/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Funnel upgrades the connection and streams onboarding lifecycle events to
// the admin dashboard.
func (h *Handler) Funnel(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}
		client := ws.NewClient(hub, conn)
		go client.Run()
	}
}
