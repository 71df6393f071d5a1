package http

import (
	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/sensor"
	"pet-agent-service/pkg/log"
)

// Handler is the public interface for the sensor HTTP delivery layer.
type Handler interface {
	Decode(c *gin.Context)
	Analyze(c *gin.Context)
	Explain(c *gin.Context)
	Types(c *gin.Context)
}

type handler struct {
	l         log.Logger
	explainer *sensor.Explainer
}

// New creates a new HTTP handler for the sensor domain.
func New(l log.Logger, explainer *sensor.Explainer) *handler {
	return &handler{
		l:         l,
		explainer: explainer,
	}
}
