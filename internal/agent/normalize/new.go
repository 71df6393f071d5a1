package normalize

import (
	"pet-agent-service/pkg/log"
)

// Normalizer repairs structurally malformed model output into the typed
// answer schemas, without touching the content of well-formed responses.
type Normalizer struct {
	l log.Logger
}

func New(l log.Logger) *Normalizer {
	return &Normalizer{l: l}
}
