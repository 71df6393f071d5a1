package registry

import "pet-agent-service/internal/agent"

// Static safe responses returned when both the main prompt and the
// recovery prompt fail. They ask the user to retry and never guess.

func DefaultRoutingDecision() *agent.RoutingDecision {
	return &agent.RoutingDecision{
		Next:            agent.TargetRouter,
		Reason:          "Something went wrong while processing the request, please rephrase it",
		Confidence:      0.1,
		ResponsePreview: "I need more information to help you, please describe your question in detail.",
	}
}

func DefaultDoctorAnswer() *agent.DoctorAnswer {
	return &agent.DoctorAnswer{
		Assessment:   "Please provide more details about your pet's health concern",
		RiskLevel:    agent.DefaultRiskLevel,
		Watchouts:    []string{"Monitor symptoms closely"},
		NextActions:  []string{"Contact a veterinarian for professional advice"},
		WhenToSeeVet: "If symptoms persist or worsen, seek veterinary care immediately",
		SafetyNote:   agent.DoctorSafetyNote,
	}
}

func DefaultNutritionistAnswer() *agent.NutritionistAnswer {
	return &agent.NutritionistAnswer{
		Summary:    "Please provide more details about your pet's nutrition needs",
		MealPlan:   []string{"Consult a professional nutritionist for a personalized diet plan"},
		AvoidList:  []string{"Chocolate, grapes, onions and other toxic foods"},
		Tips:       []string{"Feed on schedule", "Provide adequate water", "Record weight changes regularly"},
		SafetyNote: agent.NutritionistSafetyNote,
	}
}

func DefaultTrainerAnswer() *agent.TrainerAnswer {
	return &agent.TrainerAnswer{
		Plan:     []string{"Please provide more details about your training goals"},
		Exercise: []string{"Daily moderate exercise recommended"},
		EnvSetup: []string{"Choose a quiet, safe training environment"},
		Warnings: []string{"Stop training if aggressive behavior occurs"},
	}
}

func DefaultFAQAnswer() *agent.FAQAnswer {
	return &agent.FAQAnswer{
		Answer:     "Sorry, I cannot answer this question right now. Please try rephrasing it, or contact support for help.",
		Source:     "generic",
		Handoff:    string(agent.TargetRouter),
		SafetyNote: agent.FAQSafetyNote,
	}
}

func DefaultAvatarAnswer() *agent.AvatarAnswer {
	return &agent.AvatarAnswer{
		Quality:      agent.DefaultQuality,
		Notes:        "Sorry, the avatar request could not be processed. Please describe what you need again.",
		OkToGenerate: false,
		Handoff:      string(agent.TargetRouter),
	}
}

// PhotoMissingAvatarAnswer is the short-circuit response when no pet photo
// has been uploaded; the frontend guides the upload instead of the model.
func PhotoMissingAvatarAnswer() *agent.AvatarAnswer {
	return &agent.AvatarAnswer{
		Quality:      agent.DefaultQuality,
		Notes:        "Please upload a pet photo to generate an avatar",
		OkToGenerate: false,
		Handoff:      string(agent.TargetRouter),
	}
}
