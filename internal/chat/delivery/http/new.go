package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/agent/registry"
	"pet-agent-service/internal/dispatch"
	"pet-agent-service/internal/model"
	"pet-agent-service/pkg/log"
)

// Dispatcher runs one turn and emits its event stream.
type Dispatcher interface {
	Dispatch(ctx context.Context, turn *model.Turn, emit dispatch.EmitFunc) error
}

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Stream(c *gin.Context)
	Agents(c *gin.Context)
}

type handler struct {
	l          log.Logger
	dispatcher Dispatcher
	registry   *registry.Registry
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, dispatcher Dispatcher, reg *registry.Registry) *handler {
	return &handler{
		l:          l,
		dispatcher: dispatcher,
		registry:   reg,
	}
}
