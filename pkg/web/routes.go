// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PancyStudios/PancySuggestGo/pkg/config"
	"github.com/PancyStudios/PancySuggestGo/pkg/discord"
	"github.com/PancyStudios/PancySuggestGo/pkg/store"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	// Keep-alive for the hosting platform's health checker
	s.GET("/", keepAliveHandler)

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/stats", statsHandler)
		api.GET("/events", eventsHandler)
	}
}

// keepAliveHandler answers the platform pinger with a plain OK
func keepAliveHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// statusHandler returns the bot and store status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store": gin.H{
			"backend": config.Get().StoreBackend,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancySuggest Go is running",
	})
}

// statsHandler returns store counters
func statsHandler(c *gin.Context) {
	st := store.Get()
	if st == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Store Offline",
			"message": "El almacén no está disponible en este momento.",
		})
		return
	}

	guilds, pending := st.Stats()
	c.JSON(http.StatusOK, gin.H{
		"guilds":  guilds,
		"pending": pending,
	})
}
