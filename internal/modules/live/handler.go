package live

import (
	"log"
	"net/http"

	"prospecttrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes registers the live subscription endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/live/prospects/:prospectId", h.Subscribe)
}

// Subscribe upgrades the connection and holds it open until the client
// goes away. The read loop exists only to detect the close.
func (h *Handler) Subscribe(c *gin.Context) {
	prospectID := c.Param("prospectId")
	if prospectID == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid prospect id")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed prospect_id=%s error=%q", prospectID, err.Error())
		return
	}

	h.hub.Subscribe(prospectID, conn)
	defer h.hub.Unsubscribe(prospectID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
