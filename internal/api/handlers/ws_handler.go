package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	forms  *application.FormService
	broker *application.ResponseBroker
}

func NewWSHandler(forms *application.FormService, broker *application.ResponseBroker) *WSHandler {
	return &WSHandler{forms: forms, broker: broker}
}

// StreamResponses pushes each new submission for a form to the owner's
// dashboard as it arrives.
func (h *WSHandler) StreamResponses(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	f, err := h.forms.GetForm(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer conn.Close()

	events, cancel := h.broker.Subscribe(f.ID)
	defer cancel()

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case resp, open := <-events:
			if !open {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(resp); err != nil {
				log.Printf("response stream for form %d: %v", f.ID, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
