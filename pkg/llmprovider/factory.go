package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pet-agent-service/config"
	"pet-agent-service/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil
	case "openai":
		return NewOpenAIAdapter(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// ManagerConfigFromLLMConfig converts config durations into Manager config.
func ManagerConfigFromLLMConfig(cfg *config.LLMConfig) *Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		maxTotal = 60 * time.Second
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   attempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
