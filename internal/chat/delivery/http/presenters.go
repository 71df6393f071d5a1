package http

import (
	"time"

	"pet-agent-service/internal/agent/registry"
	"pet-agent-service/internal/dispatch"
	"pet-agent-service/internal/model"
)

// --- Request DTOs ---

type streamReq struct {
	Message             string             `json:"message" binding:"required"`
	ConversationSummary string             `json:"conversation_summary"`
	PetProfile          *model.PetProfile  `json:"pet_profile"`
	WindowStats         *model.WindowStats `json:"window_stats"`
	PetPhotoUploaded    bool               `json:"pet_photo_uploaded"`
	Language            string             `json:"language"`
}

func (r streamReq) toTurn() *model.Turn {
	return &model.Turn{
		UserMessage:         r.Message,
		ConversationSummary: r.ConversationSummary,
		PetProfile:          r.PetProfile,
		WindowStats:         r.WindowStats,
		PetPhotoUploaded:    r.PetPhotoUploaded,
		ExplicitLanguage:    r.Language,
	}
}

// --- Response DTOs ---

// streamEventResp is one SSE data payload.
type streamEventResp struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Agent     string `json:"agent"`
	Content   any    `json:"content"`
	Timestamp string `json:"timestamp"`
}

func newStreamEventResp(ev dispatch.Event) streamEventResp {
	return streamEventResp{
		ID:        ev.ID,
		Type:      string(ev.Type),
		Agent:     string(ev.Agent),
		Content:   ev.Content,
		Timestamp: ev.Timestamp.Format(time.RFC3339),
	}
}

type agentResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
}

type agentsResp struct {
	Agents []agentResp `json:"agents"`
}

func (h *handler) newAgentsResp(specialists []*registry.Specialist) agentsResp {
	agents := make([]agentResp, len(specialists))
	for i, s := range specialists {
		agents[i] = agentResp{
			Name:        string(s.Target),
			Description: s.Description,
			Endpoint:    "/api/v1/chat/stream",
		}
	}
	return agentsResp{Agents: agents}
}
