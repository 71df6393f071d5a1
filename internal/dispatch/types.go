package dispatch

import (
	"time"

	"pet-agent-service/internal/agent"
)

// EventType classifies the events a dispatched turn emits.
type EventType string

const (
	EventRouter     EventType = "router"
	EventTransfer   EventType = "transfer"
	EventSpecialist EventType = "specialist"
	EventError      EventType = "error"
)

// Event is one entry of the ordered outgoing stream. Events are append-only
// and consumed in emission order.
type Event struct {
	ID        string       `json:"id"`
	Type      EventType    `json:"type"`
	Agent     agent.Target `json:"agent,omitempty"`
	Content   any          `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
}

// TransferNotice is the content payload of a transfer event.
type TransferNotice struct {
	Message     string       `json:"message"`
	TargetAgent agent.Target `json:"target_agent"`
}

// ErrorNotice is the content payload of an error event.
type ErrorNotice struct {
	Message string `json:"message"`
}

// EmitFunc consumes one stream event. A non-nil error means the outbound
// stream can no longer be written and aborts the turn.
type EmitFunc func(Event) error
