package normalize

import (
	"context"
	"encoding/json"
	"fmt"

	"pet-agent-service/internal/agent"
)

// parseObject strips any code fence and decodes the payload into raw fields.
func parseObject(text string) (map[string]json.RawMessage, error) {
	cleaned := StripCodeFences(text)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return fields, nil
}

func requireFields(fields map[string]json.RawMessage, names ...string) error {
	for _, name := range names {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	return nil
}

// Router normalizes the router's raw output into a routing decision.
// A legacy "target" field is accepted as an alias for "next", and any
// unrecognized destination is coerced back to the router itself.
func (n *Normalizer) Router(ctx context.Context, text string) (*agent.RoutingDecision, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}

	if _, ok := fields["next"]; !ok {
		if target, ok := fields["target"]; ok {
			fields["next"] = target
		}
	}
	if err := requireFields(fields, "next", "reason", "confidence", "response_preview"); err != nil {
		return nil, err
	}

	next := agent.Target(repairString(fields["next"]))
	if !next.Valid() {
		n.l.Warnf(ctx, "normalize: unknown routing target %q, keeping turn on router", next)
		next = agent.TargetRouter
	}

	confidence, repaired := repairConfidence(fields["confidence"], agent.DefaultConfidence)
	if repaired {
		n.l.Warnf(ctx, "normalize: router confidence out of range, reset to %v", agent.DefaultConfidence)
	}

	decision := &agent.RoutingDecision{
		Next:            next,
		Reason:          repairString(fields["reason"]),
		Confidence:      confidence,
		ResponsePreview: repairString(fields["response_preview"]),
		TransferMessage: repairString(fields["transfer_message"]),
	}
	if raw, ok := fields["needs_pet_status"]; ok {
		if b, err := repairBool(raw); err == nil {
			decision.NeedsPetStatus = b
		}
	}
	return decision, nil
}

// Doctor normalizes the health specialist's raw output.
func (n *Normalizer) Doctor(ctx context.Context, text string) (*agent.DoctorAnswer, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}
	if err := requireFields(fields, "assessment", "risk_level", "watchouts", "next_actions", "when_to_see_vet"); err != nil {
		return nil, err
	}

	risk, coerced := repairEnum(repairString(fields["risk_level"]), agent.ValidRiskLevels, agent.DefaultRiskLevel)
	if coerced {
		n.l.Warnf(ctx, "normalize: doctor risk_level coerced to %q", risk)
	}

	answer := &agent.DoctorAnswer{
		Assessment:   repairString(fields["assessment"]),
		RiskLevel:    risk,
		Watchouts:    repairStringList(fields["watchouts"], listOptions{}),
		NextActions:  repairStringList(fields["next_actions"], listOptions{primary: "action"}),
		WhenToSeeVet: repairString(fields["when_to_see_vet"]),
		Handoff:      repairHandoff(fields["handoff"]),
		SafetyNote:   repairString(fields["safety_note"]),
	}
	if answer.SafetyNote == "" {
		answer.SafetyNote = agent.DoctorSafetyNote
	}
	return answer, nil
}

// Nutritionist normalizes the nutrition specialist's raw output. Keyed
// meal plans flatten to "meal: portion" lines in document order.
func (n *Normalizer) Nutritionist(ctx context.Context, text string) (*agent.NutritionistAnswer, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}
	if err := requireFields(fields, "summary", "meal_plan", "avoid_list", "tips"); err != nil {
		return nil, err
	}

	answer := &agent.NutritionistAnswer{
		Summary:    repairString(fields["summary"]),
		MealPlan:   repairStringList(fields["meal_plan"], listOptions{keyedFormat: true}),
		AvoidList:  repairStringList(fields["avoid_list"], listOptions{}),
		Tips:       repairStringList(fields["tips"], listOptions{pair: [2]string{"title", "content"}}),
		Handoff:    repairHandoff(fields["handoff"]),
		SafetyNote: repairString(fields["safety_note"]),
	}
	if answer.SafetyNote == "" {
		answer.SafetyNote = agent.NutritionistSafetyNote
	}
	return answer, nil
}

// Trainer normalizes the training specialist's raw output.
func (n *Normalizer) Trainer(ctx context.Context, text string) (*agent.TrainerAnswer, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}
	if err := requireFields(fields, "plan", "exercise", "env_setup", "warnings"); err != nil {
		return nil, err
	}

	return &agent.TrainerAnswer{
		Plan:     repairStringList(fields["plan"], listOptions{pair: [2]string{"step", "description"}}),
		Exercise: repairStringList(fields["exercise"], listOptions{keyedFormat: true}),
		EnvSetup: repairStringList(fields["env_setup"], listOptions{keyedFormat: true, primary: "item"}),
		Warnings: repairStringList(fields["warnings"], listOptions{}),
		Handoff:  repairHandoff(fields["handoff"]),
	}, nil
}

// FAQ normalizes the FAQ specialist's raw output.
func (n *Normalizer) FAQ(ctx context.Context, text string) (*agent.FAQAnswer, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}
	if err := requireFields(fields, "answer", "source"); err != nil {
		return nil, err
	}

	answer := &agent.FAQAnswer{
		Answer:     repairString(fields["answer"]),
		Source:     repairString(fields["source"]),
		Handoff:    repairHandoff(fields["handoff"]),
		SafetyNote: repairString(fields["safety_note"]),
	}
	if answer.SafetyNote == "" {
		answer.SafetyNote = agent.FAQSafetyNote
	}
	return answer, nil
}

// Explanation normalizes the data translator's raw output for one
// vitals window.
func (n *Normalizer) Explanation(ctx context.Context, text string) (*agent.WindowExplanation, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}
	if err := requireFields(fields, "mood", "insights", "watchouts", "nextAction", "confidence"); err != nil {
		return nil, err
	}

	confidence, repaired := repairConfidence(fields["confidence"], agent.DefaultConfidence)
	if repaired {
		n.l.Warnf(ctx, "normalize: explanation confidence out of range, reset to %v", agent.DefaultConfidence)
	}

	explanation := &agent.WindowExplanation{
		Mood:       repairString(fields["mood"]),
		Insights:   repairStringList(fields["insights"], listOptions{}),
		Watchouts:  repairStringList(fields["watchouts"], listOptions{}),
		NextAction: repairStringList(fields["nextAction"], listOptions{}),
		Confidence: confidence,
		SafetyNote: repairString(fields["safety_note"]),
	}
	if explanation.SafetyNote == "" {
		explanation.SafetyNote = agent.ExplainSafetyNote
	}
	return explanation, nil
}

// Avatar normalizes the avatar specialist's raw output.
func (n *Normalizer) Avatar(ctx context.Context, text string) (*agent.AvatarAnswer, error) {
	fields, err := parseObject(text)
	if err != nil {
		return nil, err
	}
	if err := requireFields(fields, "style", "quality", "notes", "ok_to_generate"); err != nil {
		return nil, err
	}

	quality, coerced := repairEnum(repairString(fields["quality"]), agent.ValidQualities, agent.DefaultQuality)
	if coerced {
		n.l.Warnf(ctx, "normalize: avatar quality coerced to %q", quality)
	}

	ok, err := repairBool(fields["ok_to_generate"])
	if err != nil {
		return nil, fmt.Errorf("%w: ok_to_generate", ErrMissingField)
	}

	return &agent.AvatarAnswer{
		Style:        repairString(fields["style"]),
		Quality:      quality,
		Notes:        repairString(fields["notes"]),
		OkToGenerate: ok,
		Handoff:      repairHandoff(fields["handoff"]),
	}, nil
}
