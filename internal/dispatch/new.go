package dispatch

import (
	"context"
	"time"

	"pet-agent-service/internal/agent/normalize"
	"pet-agent-service/internal/agent/registry"
	"pet-agent-service/internal/language"
	"pet-agent-service/pkg/log"
)

// Gateway is the opaque generative-model call boundary. Implementations
// must be safe for concurrent use across turns.
type Gateway interface {
	Generate(ctx context.Context, systemPrompt, userInput string, temperature float64) (string, error)
}

// Engine orchestrates one conversational turn into an ordered event stream.
// It holds no per-turn state; a single Engine serves all callers.
type Engine struct {
	l             log.Logger
	gateway       Gateway
	registry      *registry.Registry
	language      language.Manager
	normalizer    *normalize.Normalizer
	transferDelay time.Duration
}

type Option func(*Engine)

// WithTransferDelay overrides the pacing delay between the transfer notice
// and the specialist call.
func WithTransferDelay(d time.Duration) Option {
	return func(e *Engine) { e.transferDelay = d }
}

func New(l log.Logger, gw Gateway, reg *registry.Registry, lang language.Manager, opts ...Option) *Engine {
	e := &Engine{
		l:             l,
		gateway:       gw,
		registry:      reg,
		language:      lang,
		normalizer:    normalize.New(l),
		transferDelay: DefaultTransferDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
