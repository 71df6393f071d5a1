package sensor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pet-agent-service/internal/agent"
	"pet-agent-service/internal/model"
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

type mockLanguage struct{}

func (m *mockLanguage) DetectLanguage(text string) string { return "en" }
func (m *mockLanguage) DetermineResponseLanguage(currentMessage, conversationSummary, explicitLanguage string) string {
	if explicitLanguage != "" {
		return explicitLanguage
	}
	return "en"
}
func (m *mockLanguage) LanguageDirective(language, conversationSummary string) string {
	return "IMPORTANT LANGUAGE REQUIREMENT: respond in " + language
}
func (m *mockLanguage) LanguageName(code string) string { return code }
func (m *mockLanguage) IsSupported(code string) bool    { return true }

type gatewayCall struct {
	systemPrompt string
	userInput    string
	temperature  float64
}

type mockGateway struct {
	replies []func() (string, error)
	calls   []gatewayCall
}

func (g *mockGateway) Generate(ctx context.Context, systemPrompt, userInput string, temperature float64) (string, error) {
	g.calls = append(g.calls, gatewayCall{systemPrompt: systemPrompt, userInput: userInput, temperature: temperature})
	if len(g.replies) == 0 {
		return "", errors.New("gateway unavailable")
	}
	next := g.replies[0]
	g.replies = g.replies[1:]
	return next()
}

func reply(text string) func() (string, error) {
	return func() (string, error) { return text, nil }
}

const explanationJSON = `{
	"mood": "relaxed, low arousal",
	"insights": ["Heart rate is in the resting range", "Activity matches the usual afternoon lull"],
	"watchouts": ["A sustained drop below this range"],
	"nextAction": ["Keep the current routine"],
	"confidence": 0.82,
	"safety_note": "Educational only."
}`

func testWindow() *model.WindowStats {
	level := 0.4
	return &model.WindowStats{HeartRate: 72, HRV: 45, ActivityLevel: &level, Temperature: 38.4}
}

func TestExplain(t *testing.T) {
	t.Run("valid model output passes through", func(t *testing.T) {
		gw := &mockGateway{replies: []func() (string, error){reply(explanationJSON)}}
		e := NewExplainer(&mockLogger{}, gw, &mockLanguage{})

		got := e.Explain(context.Background(), testWindow(), &model.PetProfile{Breed: "dog"}, "vi")

		if got.Mood != "relaxed, low arousal" || got.Confidence != 0.82 {
			t.Errorf("unexpected explanation: %+v", got)
		}
		if len(got.Insights) != 2 || len(got.Watchouts) != 1 || len(got.NextAction) != 1 {
			t.Errorf("unexpected list sizes: %+v", got)
		}
		if len(gw.calls) != 1 {
			t.Fatalf("expected 1 gateway call, got %d", len(gw.calls))
		}
		call := gw.calls[0]
		if call.temperature != 0.3 {
			t.Errorf("expected temperature 0.3, got %v", call.temperature)
		}
		if !strings.Contains(call.systemPrompt, "Data Translator") {
			t.Errorf("system prompt missing translator role: %q", call.systemPrompt)
		}
		if !strings.Contains(call.systemPrompt, "respond in vi") {
			t.Errorf("system prompt missing language directive: %q", call.systemPrompt)
		}
		if !strings.Contains(call.userInput, `"window_stats"`) || !strings.Contains(call.userInput, `"pet_profile"`) {
			t.Errorf("user input missing data sections: %q", call.userInput)
		}
	})

	t.Run("out of range confidence is reset", func(t *testing.T) {
		gw := &mockGateway{replies: []func() (string, error){reply(
			`{"mood": "excited", "insights": ["High arousal spike"], "watchouts": ["Overexertion"], "nextAction": ["Offer water"], "confidence": 1.7}`,
		)}}
		e := NewExplainer(&mockLogger{}, gw, &mockLanguage{})

		got := e.Explain(context.Background(), testWindow(), nil, "")

		if got.Confidence != agent.DefaultConfidence {
			t.Errorf("expected confidence %v, got %v", agent.DefaultConfidence, got.Confidence)
		}
		if got.SafetyNote != agent.ExplainSafetyNote {
			t.Errorf("expected default safety note, got %q", got.SafetyNote)
		}
	})

	t.Run("malformed output falls back to recovery prompt", func(t *testing.T) {
		gw := &mockGateway{replies: []func() (string, error){
			reply("I cannot answer in JSON right now."),
			reply(explanationJSON),
		}}
		e := NewExplainer(&mockLogger{}, gw, &mockLanguage{})

		got := e.Explain(context.Background(), testWindow(), nil, "")

		if got.Mood != "relaxed, low arousal" {
			t.Errorf("expected recovery prompt answer, got %+v", got)
		}
		if len(gw.calls) != 2 {
			t.Fatalf("expected 2 gateway calls, got %d", len(gw.calls))
		}
		fallback := gw.calls[1]
		if !strings.Contains(fallback.systemPrompt, "error processing") {
			t.Errorf("recovery prompt missing error framing: %q", fallback.systemPrompt)
		}
		if !strings.Contains(fallback.systemPrompt, `"heart_rate":72`) {
			t.Errorf("recovery prompt missing folded window stats: %q", fallback.systemPrompt)
		}
		if fallback.userInput != "" {
			t.Errorf("recovery prompt should carry no separate user input, got %q", fallback.userInput)
		}
		if fallback.temperature != 0.3 {
			t.Errorf("expected temperature 0.3, got %v", fallback.temperature)
		}
	})

	t.Run("both prompts failing yields the static answer", func(t *testing.T) {
		gw := &mockGateway{}
		e := NewExplainer(&mockLogger{}, gw, &mockLanguage{})

		got := e.Explain(context.Background(), testWindow(), nil, "")

		if len(gw.calls) != 2 {
			t.Fatalf("expected 2 gateway calls, got %d", len(gw.calls))
		}
		if got.Mood != "Insufficient data" || got.Confidence != 0.1 {
			t.Errorf("unexpected static answer: %+v", got)
		}
		if got.SafetyNote != agent.ExplainSafetyNote {
			t.Errorf("unexpected safety note: %q", got.SafetyNote)
		}
	})
}
