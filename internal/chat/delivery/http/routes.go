package http

import (
	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The stream route is rate limited; each turn costs up to two model calls.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/stream", mw.RateLimit(), h.Stream)
	rg.GET("/agents", h.Agents)
}
