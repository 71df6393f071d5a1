package registry

import (
	"pet-agent-service/internal/agent"
	"pet-agent-service/internal/model"
)

// Specialist is one routable agent definition: its prompts, sampling
// temperature, and the required fields of its response schema.
type Specialist struct {
	Target          agent.Target
	Name            string
	Description     string
	Temperature     float64
	systemPrompt    string
	developerPrompt string
	fallbackPrompt  func(turn *model.Turn) string
	requiredFields  []string
}

// RequiredFields returns the response fields the specialist must produce.
func (s *Specialist) RequiredFields() []string {
	return s.requiredFields
}

// FallbackTemperature is the lower sampling temperature used for the
// recovery prompt after a schema or parse failure.
const FallbackTemperature = 0.3
