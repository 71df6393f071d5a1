package agent

// Closed value sets for enumerated fields.
var (
	ValidRiskLevels = []string{"low", "medium", "high"}
	ValidQualities  = []string{"standard", "hd"}
)

// Coercion defaults for out-of-set enum values.
const (
	DefaultRiskLevel  = "medium"
	DefaultQuality    = "standard"
	DefaultConfidence = 0.5
)

// Per-specialist safety disclaimers injected when the model omits them.
const (
	DoctorSafetyNote       = "Please consult a professional veterinarian for medical advice."
	NutritionistSafetyNote = "Please consult a professional nutritionist for dietary advice."
	FAQSafetyNote          = "FAQ information only, consult specialists for specific issues."
	ExplainSafetyNote      = "This is educational data analysis, not medical diagnosis."
)
