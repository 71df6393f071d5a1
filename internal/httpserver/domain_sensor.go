package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/middleware"
	sensorHTTP "pet-agent-service/internal/sensor/delivery/http"
)

// setupSensorDomain initializes the sensor domain and registers its routes.
func (srv HTTPServer) setupSensorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := sensorHTTP.New(srv.l, srv.explainer)
	sensorHTTP.RegisterRoutes(api.Group("/sensor"), h, mw)

	srv.l.Infof(ctx, "Sensor domain registered at /api/v1/sensor")
	return nil
}
