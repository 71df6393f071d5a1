package registry

import (
	"fmt"

	"pet-agent-service/internal/agent"
)

// Registry holds every routable specialist definition. It is a pure
// read-only lookup built once at startup.
type Registry struct {
	specialists map[agent.Target]*Specialist
	order       []agent.Target
}

func New() *Registry {
	r := &Registry{specialists: make(map[agent.Target]*Specialist)}
	for _, s := range []*Specialist{
		{
			Target:          agent.TargetRouter,
			Name:            "Master Butler",
			Description:     "Identifies intent and routes the conversation to a specialist",
			Temperature:     0.3,
			systemPrompt:    routerSystemPrompt,
			developerPrompt: routerDeveloperPrompt,
			requiredFields:  []string{"next", "reason", "confidence", "response_preview"},
		},
		{
			Target:          agent.TargetDoctor,
			Name:            "Health Advisor",
			Description:     "Educational and triage advice for health concerns",
			Temperature:     0.5,
			systemPrompt:    doctorSystemPrompt,
			developerPrompt: doctorDeveloperPrompt,
			fallbackPrompt:  doctorFallbackPrompt,
			requiredFields:  []string{"assessment", "risk_level", "watchouts", "next_actions", "when_to_see_vet"},
		},
		{
			Target:          agent.TargetNutritionist,
			Name:            "Nutrition Advisor",
			Description:     "Safe, actionable, non-medical dietary advice",
			Temperature:     0.5,
			systemPrompt:    nutritionistSystemPrompt,
			developerPrompt: nutritionistDeveloperPrompt,
			fallbackPrompt:  nutritionistFallbackPrompt,
			requiredFields:  []string{"summary", "meal_plan", "avoid_list", "tips"},
		},
		{
			Target:          agent.TargetTrainer,
			Name:            "Training Advisor",
			Description:     "Positive training approaches and behavior plans",
			Temperature:     0.5,
			systemPrompt:    trainerSystemPrompt,
			developerPrompt: trainerDeveloperPrompt,
			fallbackPrompt:  trainerFallbackPrompt,
			requiredFields:  []string{"plan", "exercise", "env_setup", "warnings"},
		},
		{
			Target:          agent.TargetFAQ,
			Name:            "FAQ Assistant",
			Description:     "Direct answers to common device and care questions",
			Temperature:     0.3,
			systemPrompt:    faqSystemPrompt,
			developerPrompt: faqDeveloperPrompt,
			requiredFields:  []string{"answer", "source"},
		},
		{
			Target:          agent.TargetAvatar,
			Name:            "Avatar Assistant",
			Description:     "Clarifies avatar generation style and parameters",
			Temperature:     0.5,
			systemPrompt:    avatarSystemPrompt,
			developerPrompt: avatarDeveloperPrompt,
			requiredFields:  []string{"style", "quality", "notes", "ok_to_generate"},
		},
	} {
		r.specialists[s.Target] = s
		r.order = append(r.order, s.Target)
	}
	return r
}

// Get returns the definition for a target.
func (r *Registry) Get(target agent.Target) (*Specialist, error) {
	s, ok := r.specialists[target]
	if !ok {
		return nil, fmt.Errorf("unknown specialist %q", target)
	}
	return s, nil
}

// Specialists returns every definition in registration order.
func (r *Registry) Specialists() []*Specialist {
	out := make([]*Specialist, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.specialists[t])
	}
	return out
}
