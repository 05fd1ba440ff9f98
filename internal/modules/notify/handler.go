package notify

import (
	"log"
	"net/http"

	"eventhub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dev setting; production should check the origin.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub      *Hub
	notifier *Notifier
	jwt      *jwt.Service
}

func NewHandler(hub *Hub, notifier *Notifier, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, notifier: notifier, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notices/stream", h.Stream)
}

// Stream upgrades to a websocket and pushes notice events until the
// client goes away. Auth rides on a query parameter since websocket
// clients cannot set headers.
func (h *Handler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("notice stream upgrade failed: %v", err)
		return
	}

	h.hub.Register(userID, conn)
	defer func() {
		h.hub.Unregister(userID)
	}()

	// A client reconnecting mid-notice still gets to see it.
	if notice, ok := h.notifier.Current(userID); ok && notice.Visible {
		_ = conn.WriteJSON(Event{Type: "show", Notice: notice})
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
