package language

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pemistahl/lingua-go"

	"pet-agent-service/pkg/log"
)

// Manager decides the response language for a turn and renders the
// language directive injected into specialist prompts.
type Manager interface {
	DetectLanguage(text string) string
	DetermineResponseLanguage(currentMessage, conversationSummary, explicitLanguage string) string
	LanguageDirective(language, conversationSummary string) string
	LanguageName(code string) string
	IsSupported(code string) bool
}

type manager struct {
	l        log.Logger
	detector lingua.LanguageDetector
	cache    *expirable.LRU[string, string]
	fallback string
}

var _ Manager = (*manager)(nil)

// New creates a language Manager. defaultLanguage must be a supported code;
// anything else falls back to English.
func New(l log.Logger, defaultLanguage string) *manager {
	if _, ok := supportedLanguages[defaultLanguage]; !ok {
		defaultLanguage = DefaultLanguage
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectableLanguages...).
		Build()

	return &manager{
		l:        l,
		detector: detector,
		// Summaries are re-detected every turn; cache recent results.
		cache:    expirable.NewLRU[string, string](detectionCacheSize, nil, detectionCacheTTL),
		fallback: defaultLanguage,
	}
}

const (
	detectionCacheSize = 1024
	detectionCacheTTL  = 10 * time.Minute
)
