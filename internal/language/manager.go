package language

import (
	"context"
	"fmt"
	"strings"
)

// DetermineResponseLanguage picks the language a specialist must answer in.
//
// Priority:
//  1. Explicit language parameter, if supported.
//  2. Current message language when there is no usable history.
//  3. History language, unless the current message is a deliberate switch
//     (long enough and lexically confirmed), in which case the current
//     message language wins.
func (m *manager) DetermineResponseLanguage(currentMessage, conversationSummary, explicitLanguage string) string {
	ctx := context.Background()

	if explicitLanguage != "" && m.IsSupported(explicitLanguage) {
		m.l.Debugf(ctx, "using explicit language: %s", explicitLanguage)
		return explicitLanguage
	}

	currentLang := m.DetectLanguage(currentMessage)

	historyLang := m.historyLanguage(conversationSummary)
	if historyLang == "" {
		return currentLang
	}

	if currentLang != historyLang && m.isDeliberateSwitch(currentMessage, currentLang) {
		m.l.Infof(ctx, "language switch detected: %s -> %s", historyLang, currentLang)
		return currentLang
	}

	return historyLang
}

// isDeliberateSwitch reports whether the current message is a real language
// change rather than a few borrowed words.
func (m *manager) isDeliberateSwitch(message, detectedLang string) bool {
	if len(strings.TrimSpace(message)) <= minSwitchLength {
		return false
	}

	patterns, ok := switchPatterns[detectedLang]
	if !ok {
		// No curated cues for this language; length alone decides.
		return true
	}

	for _, p := range patterns {
		if p.MatchString(message) {
			return true
		}
	}
	return false
}

// LanguageDirective renders the block appended to a specialist system prompt:
// the response-language instruction, the all-fields requirement, and, when the
// conversation history was in a different language, a note about the switch so
// the model does not silently keep answering in the old language.
func (m *manager) LanguageDirective(language, conversationSummary string) string {
	instruction, ok := languageInstructions[language]
	if !ok {
		instruction = languageInstructions[DefaultLanguage]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n**IMPORTANT LANGUAGE REQUIREMENT:** %s", instruction)
	b.WriteString("\n\n**CRITICAL:** All your responses (including JSON field values) must be in the same language as the user's current input. Do not mix languages.")

	if historyLang := m.historyLanguage(conversationSummary); historyLang != "" && historyLang != language {
		fmt.Fprintf(&b,
			"\n\n**CONVERSATION CONTEXT:** The user has been communicating in %s, but the current message is in %s. Please respond in %s to match the current message language.",
			m.LanguageName(historyLang), m.LanguageName(language), m.LanguageName(language))
	}

	return b.String()
}
