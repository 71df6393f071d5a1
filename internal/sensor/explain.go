package sensor

import (
	"context"
	"encoding/json"
	"fmt"

	"pet-agent-service/internal/agent"
	"pet-agent-service/internal/agent/normalize"
	"pet-agent-service/internal/language"
	"pet-agent-service/internal/model"
	"pet-agent-service/pkg/log"
)

// Gateway is the generative-model call boundary for window explanation.
type Gateway interface {
	Generate(ctx context.Context, systemPrompt, userInput string, temperature float64) (string, error)
}

const explainTemperature = 0.3

const explainSystemPrompt = `You are a "**Data Translator**" converting heart rate/HRV/activity/emotion data (valence/arousal) into human-friendly insights.
* No diagnosis; if data is insufficient, suggest "continue observing".
* Strict JSON output only (schema below).`

const explainDeveloperPrompt = `Input: ` + "`window_stats`" + ` and ` + "`pet_profile`" + `; if multimodal conflicts exist, explain and reduce ` + "`confidence`" + `.
Output fields:
* ` + "`mood`" + ` (e.g., "relaxed, low arousal" / "stressed, high arousal" / "excited")
* ` + "`insights`" + ` (2-4 observations)
* ` + "`watchouts`" + ` (1-3 things to watch)
* ` + "`nextAction`" + ` (1-3 action recommendations)
* ` + "`confidence`" + ` (0-1)
* ` + "`safety_note`" + ` (fixed "educational, not medical diagnosis")
Strict JSON output only.`

// Explainer turns one vitals window into a human-friendly explanation
// through the model, degrading to a recovery prompt and then a minimal
// static answer. It never fails.
type Explainer struct {
	l          log.Logger
	gateway    Gateway
	language   language.Manager
	normalizer *normalize.Normalizer
}

func NewExplainer(l log.Logger, gw Gateway, lang language.Manager) *Explainer {
	return &Explainer{
		l:          l,
		gateway:    gw,
		language:   lang,
		normalizer: normalize.New(l),
	}
}

// Explain interprets one vitals window for the pet owner. explicitLanguage
// is the optional caller-requested response language.
func (e *Explainer) Explain(ctx context.Context, stats *model.WindowStats, profile *model.PetProfile, explicitLanguage string) *agent.WindowExplanation {
	lang := e.language.DetermineResponseLanguage("", "", explicitLanguage)
	directive := e.language.LanguageDirective(lang, "")

	text, err := e.gateway.Generate(ctx, explainSystemPrompt+"\n\n"+explainDeveloperPrompt+directive, explainUserInput(stats, profile), explainTemperature)
	if err == nil {
		explanation, nerr := e.normalizer.Explanation(ctx, text)
		if nerr == nil {
			return explanation
		}
		err = nerr
	}
	e.l.Warnf(ctx, "sensor: explanation main prompt failed: %v", err)

	text, ferr := e.gateway.Generate(ctx, explainFallbackPrompt(stats, profile), "", explainTemperature)
	if ferr == nil {
		explanation, nerr := e.normalizer.Explanation(ctx, text)
		if nerr == nil {
			return explanation
		}
		ferr = nerr
	}
	e.l.Errorf(ctx, "sensor: explanation degraded to static answer: %v", ferr)

	return defaultExplanation()
}

func explainUserInput(stats *model.WindowStats, profile *model.PetProfile) string {
	fields := map[string]any{
		"window_stats": stats,
	}
	if profile != nil {
		fields["pet_profile"] = profile
	} else {
		fields["pet_profile"] = map[string]any{}
	}
	raw, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func explainFallbackPrompt(stats *model.WindowStats, profile *model.PetProfile) string {
	return fmt.Sprintf(`You are a data analysis expert for pet health monitoring. There was an error processing the data analysis request.

Window stats: %s
Pet profile: %s

Please provide a helpful response, including:
- mood: Assessment of pet's current mood/state
- insights: List of data insights
- watchouts: List of things to watch for
- nextAction: List of recommended next actions
- confidence: Confidence level (0.0 to 1.0)
- safety_note: Important safety disclaimer

Respond in JSON format only.`, marshalOrEmpty(stats), marshalOrEmpty(profile))
}

func marshalOrEmpty(v any) string {
	raw, err := json.Marshal(v)
	if err != nil || string(raw) == "null" {
		return "{}"
	}
	return string(raw)
}

// defaultExplanation is the static answer after both prompts fail. It
// asks for more data and never guesses.
func defaultExplanation() *agent.WindowExplanation {
	return &agent.WindowExplanation{
		Mood:       "Insufficient data",
		Insights:   []string{"Need more data for analysis"},
		Watchouts:  []string{"Continue observing pet status"},
		NextAction: []string{"Collect more data", "Observe pet behavior changes"},
		Confidence: 0.1,
		SafetyNote: agent.ExplainSafetyNote,
	}
}
