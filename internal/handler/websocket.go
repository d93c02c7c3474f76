package handler

import (
	"hrdesk/internal/websocket"

	"github.com/gin-gonic/gin"
)

type WebSocketHandler struct {
	hub *websocket.Hub
}

func NewWebSocketHandler(hub *websocket.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Serve 變更通知
// @Summary store 變更通知（websocket）
// @Tags WebSocket
// @Param token query string false "session token，瀏覽器無法帶 Authorization header"
// @Router /ws [get]
func (h *WebSocketHandler) Serve(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request)
}
