// Package web - live suggestion event feed over websocket.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/PancyStudios/PancySuggestGo/pkg/feed"
	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is read-only status data, same exposure as /api/stats
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// eventsHandler upgrades the connection and streams lifecycle events from
// the feed hub until the client disconnects.
func eventsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error actualizando conexión websocket: %v", err), "WebSocket")
		return
	}

	events, cancel := feed.Get().Subscribe()
	logger.Debug(fmt.Sprintf("Cliente websocket conectado: %s", c.ClientIP()), "WebSocket")

	// Reader goroutine: only there to detect the close frame
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer func() {
			cancel()
			conn.Close()
			logger.Debug(fmt.Sprintf("Cliente websocket desconectado: %s", c.ClientIP()), "WebSocket")
		}()

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
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
	}()
}
