package http

import (
	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/decode", mw.RateLimit(), h.Decode)
	rg.POST("/analyze", mw.RateLimit(), h.Analyze)
	rg.POST("/explain", mw.RateLimit(), h.Explain)
	rg.GET("/types", h.Types)
}
