package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "pet-agent-service/internal/chat/delivery/http"
	"pet-agent-service/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.dispatcher, srv.registry)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered at /api/v1/chat")
	return nil
}
