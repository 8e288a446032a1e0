package websocket

import (
	"net/http"

	"shopfront-service/internal/middleware"
	ws "shopfront-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Session cookie auth already gates the route; the browser origin is
	// validated by the CORS layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades admin connections onto the notification hub.
type WSHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *ws.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// Connect upgrades the request and starts the client pumps. The route is
// admin-only; RequireRole runs before this handler.
func (h *WSHandler) Connect(c *gin.Context) {
	sess := middleware.GetSession(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn, sess.UserID(), h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
