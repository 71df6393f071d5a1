package dispatch

import (
	"context"

	"pet-agent-service/pkg/llmprovider"
)

// providerGateway bridges the engine to the provider fallback chain.
type providerGateway struct {
	manager *llmprovider.Manager
}

// NewGateway wraps a provider manager as the engine's model boundary.
func NewGateway(manager *llmprovider.Manager) Gateway {
	return &providerGateway{manager: manager}
}

func (g *providerGateway) Generate(ctx context.Context, systemPrompt, userInput string, temperature float64) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Temperature:       temperature,
	}
	if userInput != "" {
		req.Messages = []llmprovider.Message{{Role: "user", Text: userInput}}
	} else {
		// Recovery prompts fold everything into the instruction; the model
		// still needs one user message to respond to.
		req.Messages = []llmprovider.Message{{Role: "user", Text: "Please respond now."}}
	}

	resp, err := g.manager.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
