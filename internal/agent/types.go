package agent

// Target identifies a routing destination.
type Target string

const (
	TargetRouter       Target = "router"
	TargetDoctor       Target = "doctor"
	TargetNutritionist Target = "nutritionist"
	TargetTrainer      Target = "trainer"
	TargetFAQ          Target = "faq"
	TargetAvatar       Target = "avatar"
)

// Valid reports whether t is one of the enumerated routing targets.
func (t Target) Valid() bool {
	switch t {
	case TargetRouter, TargetDoctor, TargetNutritionist, TargetTrainer, TargetFAQ, TargetAvatar:
		return true
	}
	return false
}

// IsSpecialist reports whether t resolves to a specialist (everything but router).
func (t Target) IsSpecialist() bool {
	return t.Valid() && t != TargetRouter
}

// RoutingDecision is the router specialist's verdict for one turn.
type RoutingDecision struct {
	Next            Target  `json:"next"`
	Reason          string  `json:"reason"`
	Confidence      float64 `json:"confidence"`
	ResponsePreview string  `json:"response_preview"`
	TransferMessage string  `json:"transfer_message,omitempty"`
	NeedsPetStatus  bool    `json:"needs_pet_status,omitempty"`
}

// DoctorAnswer is the health specialist's structured response.
type DoctorAnswer struct {
	Assessment   string   `json:"assessment"`
	RiskLevel    string   `json:"risk_level"`
	Watchouts    []string `json:"watchouts"`
	NextActions  []string `json:"next_actions"`
	WhenToSeeVet string   `json:"when_to_see_vet"`
	Handoff      string   `json:"handoff,omitempty"`
	SafetyNote   string   `json:"safety_note"`
}

// NutritionistAnswer is the nutrition specialist's structured response.
type NutritionistAnswer struct {
	Summary    string   `json:"summary"`
	MealPlan   []string `json:"meal_plan"`
	AvoidList  []string `json:"avoid_list"`
	Tips       []string `json:"tips"`
	Handoff    string   `json:"handoff,omitempty"`
	SafetyNote string   `json:"safety_note"`
}

// TrainerAnswer is the training specialist's structured response.
type TrainerAnswer struct {
	Plan     []string `json:"plan"`
	Exercise []string `json:"exercise"`
	EnvSetup []string `json:"env_setup"`
	Warnings []string `json:"warnings"`
	Handoff  string   `json:"handoff,omitempty"`
}

// FAQAnswer is the FAQ specialist's structured response.
type FAQAnswer struct {
	Answer     string `json:"answer"`
	Source     string `json:"source"`
	Handoff    string `json:"handoff,omitempty"`
	SafetyNote string `json:"safety_note,omitempty"`
}

// WindowExplanation is the data translator's reading of one vitals window.
type WindowExplanation struct {
	Mood       string   `json:"mood"`
	Insights   []string `json:"insights"`
	Watchouts  []string `json:"watchouts"`
	NextAction []string `json:"nextAction"`
	Confidence float64  `json:"confidence"`
	SafetyNote string   `json:"safety_note"`
}

// AvatarAnswer is the avatar specialist's structured response.
type AvatarAnswer struct {
	Style        string `json:"style"`
	Quality      string `json:"quality"`
	Notes        string `json:"notes"`
	OkToGenerate bool   `json:"ok_to_generate"`
	Handoff      string `json:"handoff,omitempty"`
}
