package language

import (
	"context"
	"strings"
)

// DetectLanguage classifies the language of text, returning a supported code.
// Empty or very short input returns the configured default.
func (m *manager) DetectLanguage(text string) string {
	clean := strings.TrimSpace(text)
	if len(clean) < minDetectableLength {
		return m.fallback
	}

	// The classifier under-detects short Chinese spans; CJK presence wins.
	if cjkPattern.MatchString(clean) {
		return "zh-cn"
	}

	if cached, ok := m.cache.Get(clean); ok {
		return cached
	}

	code := m.classify(clean)
	m.cache.Add(clean, code)
	return code
}

func (m *manager) classify(text string) string {
	lang, ok := m.detector.DetectLanguageOf(text)
	if !ok {
		m.l.Debugf(context.Background(), "language detection inconclusive, using default %q", m.fallback)
		return m.fallback
	}

	code, ok := isoToCode[lang.IsoCode639_1().String()]
	if !ok {
		m.l.Warnf(context.Background(), "unsupported language detected: %s, using default %q", lang, m.fallback)
		return m.fallback
	}
	return code
}

// historyLanguage detects the dominant language of a conversation summary.
// Returns "" when the summary is too short to be a reliable signal.
func (m *manager) historyLanguage(conversationSummary string) string {
	if len(strings.TrimSpace(conversationSummary)) < minHistoryLength {
		return ""
	}
	return m.DetectLanguage(conversationSummary)
}

// LanguageName returns the human-readable name for a supported code.
func (m *manager) LanguageName(code string) string {
	if name, ok := supportedLanguages[code]; ok {
		return name
	}
	return supportedLanguages[DefaultLanguage]
}

// IsSupported reports whether code is in the supported set.
func (m *manager) IsSupported(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}
