package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/agent/registry"
	chatHTTP "pet-agent-service/internal/chat/delivery/http"
	"pet-agent-service/internal/sensor"
	"pet-agent-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	dispatcher chatHTTP.Dispatcher
	registry   *registry.Registry

	// Sensor domain
	explainer *sensor.Explainer

	// Rate limiting
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Dispatcher      chatHTTP.Dispatcher
	Registry        *registry.Registry
	Explainer       *sensor.Explainer
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		dispatcher:      cfg.Dispatcher,
		registry:        cfg.Registry,
		explainer:       cfg.Explainer,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dispatcher == nil {
		return errors.New("dispatcher is required")
	}
	if srv.registry == nil {
		return errors.New("registry is required")
	}
	if srv.explainer == nil {
		return errors.New("explainer is required")
	}
	return nil
}
