package language

import (
	"context"
	"strings"
	"testing"
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

func newTestManager(t *testing.T) *manager {
	t.Helper()
	return New(&mockLogger{}, "en")
}

func TestDetectLanguage(t *testing.T) {
	m := newTestManager(t)

	t.Run("empty input returns default", func(t *testing.T) {
		if got := m.DetectLanguage(""); got != "en" {
			t.Errorf("expected en, got %q", got)
		}
	})

	t.Run("too short input returns default", func(t *testing.T) {
		if got := m.DetectLanguage("hi"); got != "en" {
			t.Errorf("expected en, got %q", got)
		}
	})

	t.Run("english message", func(t *testing.T) {
		if got := m.DetectLanguage("Hello, my dog refuses to eat breakfast every morning"); got != "en" {
			t.Errorf("expected en, got %q", got)
		}
	})

	t.Run("CJK characters force zh-cn", func(t *testing.T) {
		inputs := []string{
			"我的狗不吃饭",
			"狗狗",
			"ok 好的",
			"short 中 span inside english text",
		}
		for _, in := range inputs {
			if got := m.DetectLanguage(in); got != "zh-cn" {
				t.Errorf("DetectLanguage(%q) = %q, expected zh-cn", in, got)
			}
		}
	})

	t.Run("detection is cached", func(t *testing.T) {
		text := "Bonjour, mon chien ne mange plus depuis deux jours"
		first := m.DetectLanguage(text)
		second := m.DetectLanguage(text)
		if first != second {
			t.Errorf("cached result %q differs from first %q", second, first)
		}
	})
}

func TestDetermineResponseLanguage(t *testing.T) {
	m := newTestManager(t)

	t.Run("explicit language wins", func(t *testing.T) {
		got := m.DetermineResponseLanguage("Hello, my dog won't eat", "", "ja")
		if got != "ja" {
			t.Errorf("expected ja, got %q", got)
		}
	})

	t.Run("unsupported explicit language is ignored", func(t *testing.T) {
		got := m.DetermineResponseLanguage("Hello, my dog will not eat today", "", "xx")
		if got != "en" {
			t.Errorf("expected en, got %q", got)
		}
	})

	t.Run("no history uses current message", func(t *testing.T) {
		got := m.DetermineResponseLanguage("我的狗今天不吃饭怎么办", "", "")
		if got != "zh-cn" {
			t.Errorf("expected zh-cn, got %q", got)
		}
	})

	t.Run("short foreign message keeps history language", func(t *testing.T) {
		summary := "用户咨询了狗狗的饮食问题，营养师给出了喂食建议"
		got := m.DetermineResponseLanguage("ok thanks", summary, "")
		if got != "zh-cn" {
			t.Errorf("expected zh-cn continuity, got %q", got)
		}
	})

	t.Run("substantial switch message wins over history", func(t *testing.T) {
		summary := "用户咨询了狗狗的饮食问题，营养师给出了喂食建议"
		got := m.DetermineResponseLanguage(
			"Could you please explain the feeding plan in English from now on?", summary, "")
		if got != "en" {
			t.Errorf("expected en after deliberate switch, got %q", got)
		}
	})

	t.Run("short history is not a signal", func(t *testing.T) {
		got := m.DetermineResponseLanguage("Hello, what should my puppy eat", "好的", "")
		// Summary under the length floor is ignored entirely.
		if got != "en" {
			t.Errorf("expected en, got %q", got)
		}
	})
}

func TestLanguageDirective(t *testing.T) {
	m := newTestManager(t)

	t.Run("directive contains instruction", func(t *testing.T) {
		d := m.LanguageDirective("ja", "")
		if !strings.Contains(d, languageInstructions["ja"]) {
			t.Errorf("directive missing japanese instruction: %q", d)
		}
		if !strings.Contains(d, "LANGUAGE REQUIREMENT") {
			t.Errorf("directive missing requirement header: %q", d)
		}
	})

	t.Run("switch note appended when history differs", func(t *testing.T) {
		summary := "用户之前一直在询问狗狗的健康问题，医生给出了建议"
		d := m.LanguageDirective("en", summary)
		if !strings.Contains(d, "CONVERSATION CONTEXT") {
			t.Errorf("expected switch note, got %q", d)
		}
		if !strings.Contains(d, "Chinese (Simplified)") {
			t.Errorf("expected history language name in note, got %q", d)
		}
	})

	t.Run("no switch note when languages match", func(t *testing.T) {
		summary := "The user has been asking about dog training routines all along"
		d := m.LanguageDirective("en", summary)
		if strings.Contains(d, "CONVERSATION CONTEXT") {
			t.Errorf("unexpected switch note: %q", d)
		}
	})

	t.Run("unknown code falls back to english instruction", func(t *testing.T) {
		d := m.LanguageDirective("xx", "")
		if !strings.Contains(d, languageInstructions["en"]) {
			t.Errorf("expected english fallback, got %q", d)
		}
	})
}
