package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_money_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Origin checks are left to the CORS middleware in front of the router.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsTransport adapts a websocket connection to the notification stream.
type wsTransport struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
}

var _ portssvc.NotificationTransport = (*wsTransport)(nil)

func newWSTransport(conn *websocket.Conn, writeTimeout time.Duration) *wsTransport {
	return &wsTransport{conn: conn, writeTimeout: writeTimeout}
}

func (t *wsTransport) Send(tx domain.Transaction) error {
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout)); err != nil {
		return err
	}
	return t.conn.WriteJSON(tx)
}

func (t *wsTransport) Receive() error {
	_, _, err := t.conn.ReadMessage()
	return err
}

func (t *wsTransport) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Goodbye")
	_ = t.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(t.writeTimeout))
	return t.conn.Close()
}

// streamNotifications godoc
// @Summary Stream a child's transactions
// @Description Upgrades to a websocket and pushes one JSON transaction per give or spend for the child. Inbound messages are ignored.
// @Tags child
// @Param   name path string true "Child name"
// @Success 101 {object} dto.TransactionResponse "Switching protocols; each frame is a transaction"
// @Router /child/{name}/notifications [get]
func (h *childHandler) streamNotifications(c *gin.Context) {
	childName := c.Param("name")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("child_name", childName))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written an error response.
		logger.Warn("Failed to upgrade notifications connection", slog.String("error", err.Error()))
		return
	}

	logger.Info("Notifications connection opened")
	if err := h.coordinator.Stream(c.Request.Context(), childName, newWSTransport(conn, h.wsWriteTimeout)); err != nil {
		logger.Error("Notification stream failed", slog.String("error", err.Error()))
		_ = conn.Close()
	}
}
