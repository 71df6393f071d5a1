package normalize

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"pet-agent-service/internal/agent"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestNormalizer() *Normalizer {
	return New(&mockLogger{})
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  \n", `{"a": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFences(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		once := StripCodeFences("```json\n{\"a\": 1}\n```")
		if got := StripCodeFences(once); got != once {
			t.Errorf("second pass changed output: %q", got)
		}
	})
}

func TestRouter(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	t.Run("well formed passes through", func(t *testing.T) {
		got, err := n.Router(ctx, `{"next": "doctor", "reason": "symptom question", "confidence": 0.92, "response_preview": "Let me check"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := &agent.RoutingDecision{
			Next:            agent.TargetDoctor,
			Reason:          "symptom question",
			Confidence:      0.92,
			ResponsePreview: "Let me check",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("target alias renamed to next", func(t *testing.T) {
		got, err := n.Router(ctx, `{"target": "faq", "reason": "general question", "confidence": 0.8, "response_preview": ""}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Next != agent.TargetFAQ {
			t.Errorf("expected faq, got %q", got.Next)
		}
	})

	t.Run("unknown target falls back to router", func(t *testing.T) {
		got, err := n.Router(ctx, `{"next": "groomer", "reason": "x", "confidence": 0.7, "response_preview": ""}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Next != agent.TargetRouter {
			t.Errorf("expected router, got %q", got.Next)
		}
	})

	t.Run("confidence out of range reset to default", func(t *testing.T) {
		for _, in := range []string{
			`{"next": "doctor", "reason": "x", "confidence": 1.5, "response_preview": ""}`,
			`{"next": "doctor", "reason": "x", "confidence": -0.2, "response_preview": ""}`,
			`{"next": "doctor", "reason": "x", "confidence": "high", "response_preview": ""}`,
		} {
			got, err := n.Router(ctx, in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Confidence != agent.DefaultConfidence {
				t.Errorf("input %s: expected %v, got %v", in, agent.DefaultConfidence, got.Confidence)
			}
		}
	})

	t.Run("fenced payload accepted", func(t *testing.T) {
		got, err := n.Router(ctx, "```json\n{\"next\": \"trainer\", \"reason\": \"behavior\", \"confidence\": 0.85, \"response_preview\": \"ok\"}\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Next != agent.TargetTrainer {
			t.Errorf("expected trainer, got %q", got.Next)
		}
	})

	t.Run("non JSON is a parse failure", func(t *testing.T) {
		_, err := n.Router(ctx, "I think the doctor should handle this")
		if !errors.Is(err, ErrParseFailure) {
			t.Fatalf("expected ErrParseFailure, got %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := n.Router(ctx, `{"next": "doctor", "confidence": 0.9, "response_preview": ""}`)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestDoctor(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	t.Run("round trip unchanged", func(t *testing.T) {
		in := &agent.DoctorAnswer{
			Assessment:   "Mild digestive upset",
			RiskLevel:    "low",
			Watchouts:    []string{"vomiting", "lethargy"},
			NextActions:  []string{"withhold food for 12h", "offer small amounts of water"},
			WhenToSeeVet: "If symptoms persist beyond 24 hours",
			SafetyNote:   "Please consult a vet.",
		}
		raw, _ := json.Marshal(in)
		got, err := n.Doctor(ctx, string(raw))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, in) {
			t.Errorf("got %+v, want %+v", got, in)
		}
	})

	t.Run("invalid risk level coerced to medium", func(t *testing.T) {
		got, err := n.Doctor(ctx, `{"assessment": "x", "risk_level": "critical", "watchouts": [], "next_actions": [], "when_to_see_vet": "now"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RiskLevel != agent.DefaultRiskLevel {
			t.Errorf("expected %q, got %q", agent.DefaultRiskLevel, got.RiskLevel)
		}
	})

	t.Run("missing safety note gets default", func(t *testing.T) {
		got, err := n.Doctor(ctx, `{"assessment": "x", "risk_level": "low", "watchouts": [], "next_actions": [], "when_to_see_vet": "now"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SafetyNote != agent.DoctorSafetyNote {
			t.Errorf("expected default safety note, got %q", got.SafetyNote)
		}
	})

	t.Run("object next actions flattened by action key", func(t *testing.T) {
		got, err := n.Doctor(ctx, `{"assessment": "x", "risk_level": "low", "watchouts": [], "next_actions": [{"action": "rest", "priority": 1}], "when_to_see_vet": "now"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.NextActions, []string{"rest"}) {
			t.Errorf("got %v", got.NextActions)
		}
	})

	t.Run("handoff object flattened", func(t *testing.T) {
		got, err := n.Doctor(ctx, `{"assessment": "x", "risk_level": "low", "watchouts": [], "next_actions": [], "when_to_see_vet": "now", "handoff": {"target": "nutritionist", "reason": "diet related"}}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Handoff != "Target: nutritionist. Reason: diet related" {
			t.Errorf("got %q", got.Handoff)
		}
	})
}

func TestNutritionist(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	t.Run("meal plan map flattened in document order", func(t *testing.T) {
		got, err := n.Nutritionist(ctx, `{"summary": "ok", "meal_plan": {"breakfast": "60g kibble", "dinner": "60g kibble"}, "avoid_list": [], "tips": []}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"breakfast: 60g kibble", "dinner: 60g kibble"}
		if !reflect.DeepEqual(got.MealPlan, want) {
			t.Errorf("got %v, want %v", got.MealPlan, want)
		}
	})

	t.Run("flattening is idempotent", func(t *testing.T) {
		first, err := n.Nutritionist(ctx, `{"summary": "ok", "meal_plan": {"breakfast": "60g", "dinner": "55g"}, "avoid_list": ["grapes"], "tips": []}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		raw, _ := json.Marshal(first)
		second, err := n.Nutritionist(ctx, string(raw))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("second pass changed output:\nfirst  %+v\nsecond %+v", first, second)
		}
	})

	t.Run("tips objects flattened by title and content", func(t *testing.T) {
		got, err := n.Nutritionist(ctx, `{"summary": "ok", "meal_plan": [], "avoid_list": [], "tips": [{"title": "Hydration", "content": "Fresh water twice daily"}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Tips, []string{"Hydration: Fresh water twice daily"}) {
			t.Errorf("got %v", got.Tips)
		}
	})

	t.Run("scalar becomes single element list", func(t *testing.T) {
		got, err := n.Nutritionist(ctx, `{"summary": "ok", "meal_plan": "two meals a day", "avoid_list": null, "tips": []}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.MealPlan, []string{"two meals a day"}) {
			t.Errorf("got %v", got.MealPlan)
		}
		if len(got.AvoidList) != 0 {
			t.Errorf("expected empty avoid_list, got %v", got.AvoidList)
		}
	})

	t.Run("missing safety note gets default", func(t *testing.T) {
		got, err := n.Nutritionist(ctx, `{"summary": "ok", "meal_plan": [], "avoid_list": [], "tips": []}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SafetyNote != agent.NutritionistSafetyNote {
			t.Errorf("got %q", got.SafetyNote)
		}
	})
}

func TestTrainer(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	t.Run("plan step objects flattened", func(t *testing.T) {
		got, err := n.Trainer(ctx, `{"plan": [{"step": "Week 1", "description": "sit command"}], "exercise": {"morning": "20 min walk"}, "env_setup": [{"item": "crate"}], "warnings": ["no punishment"]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Plan, []string{"Week 1: sit command"}) {
			t.Errorf("plan: got %v", got.Plan)
		}
		if !reflect.DeepEqual(got.Exercise, []string{"morning: 20 min walk"}) {
			t.Errorf("exercise: got %v", got.Exercise)
		}
		if !reflect.DeepEqual(got.EnvSetup, []string{"crate"}) {
			t.Errorf("env_setup: got %v", got.EnvSetup)
		}
	})

	t.Run("missing field rejected", func(t *testing.T) {
		_, err := n.Trainer(ctx, `{"plan": [], "exercise": [], "warnings": []}`)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestFAQ(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	got, err := n.FAQ(ctx, `{"answer": "Twice daily for adult dogs", "source": "builtin"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Answer == "" || got.Source != "builtin" {
		t.Errorf("got %+v", got)
	}
	if got.SafetyNote != agent.FAQSafetyNote {
		t.Errorf("expected default safety note, got %q", got.SafetyNote)
	}
}

func TestAvatar(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	t.Run("invalid quality coerced to standard", func(t *testing.T) {
		got, err := n.Avatar(ctx, `{"style": "cartoon", "quality": "ultra", "notes": "", "ok_to_generate": true}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quality != agent.DefaultQuality {
			t.Errorf("expected %q, got %q", agent.DefaultQuality, got.Quality)
		}
	})

	t.Run("string boolean accepted", func(t *testing.T) {
		got, err := n.Avatar(ctx, `{"style": "realistic", "quality": "hd", "notes": "needs photo", "ok_to_generate": "false"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OkToGenerate {
			t.Errorf("expected false")
		}
	})
}

func TestExplanation(t *testing.T) {
	n := newTestNormalizer()
	ctx := context.Background()

	t.Run("missing safety note defaulted", func(t *testing.T) {
		got, err := n.Explanation(ctx, `{"mood": "calm", "insights": ["steady vitals"], "watchouts": ["sudden spikes"], "nextAction": ["keep routine"], "confidence": 0.7}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SafetyNote != agent.ExplainSafetyNote {
			t.Errorf("expected default safety note, got %q", got.SafetyNote)
		}
		if got.Confidence != 0.7 {
			t.Errorf("expected confidence 0.7, got %v", got.Confidence)
		}
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		_, err := n.Explanation(ctx, `{"mood": "calm", "insights": [], "watchouts": [], "confidence": 0.7}`)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestRepairStringList(t *testing.T) {
	t.Run("mixed scalar list stringified", func(t *testing.T) {
		got := repairStringList(json.RawMessage(`["a", 2, true]`), listOptions{})
		if !reflect.DeepEqual(got, []string{"a", "2", "true"}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("map values without keyed format", func(t *testing.T) {
		got := repairStringList(json.RawMessage(`{"first": "a", "second": "b"}`), listOptions{})
		if !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("document order preserved for many keys", func(t *testing.T) {
		got := repairStringList(json.RawMessage(`{"z": "1", "a": "2", "m": "3"}`), listOptions{keyedFormat: true})
		want := []string{"z: 1", "a: 2", "m: 3"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestParseFailureMessage(t *testing.T) {
	n := newTestNormalizer()
	_, err := n.Doctor(context.Background(), "not json at all")
	if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("expected parse failure message, got %v", err)
	}
}
