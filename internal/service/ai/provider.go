// Package ai abstracts the summarization providers behind a single interface.
package ai

import (
	"context"
	"errors"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// Gemini exposes an OpenAI-compatible endpoint, so the default provider is
// the compatible one pointed at Google's API.
const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai/"
	geminiDefaultModel = "gemini-1.5-flash-latest"
)

// Generation defaults carried over from the feed's original prompt tuning.
const (
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.6
)

var (
	ErrMissingAPIKey   = errors.New("ai: missing API key")
	ErrMissingModel    = errors.New("ai: missing model")
	ErrMissingBaseURL  = errors.New("ai: missing base URL")
	ErrInvalidProvider = errors.New("ai: invalid provider")
	ErrEmptyCompletion = errors.New("ai: empty completion")
)

// Provider is a text-completion backend used for summarization.
type Provider interface {
	// Name returns the provider identifier.
	Name() string
	// Model returns the configured model identifier.
	Model() string
	// Test sends a trivial message to verify the credential and model.
	Test(ctx context.Context) (string, error)
	// Complete generates a response for the given system prompt and content.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Endpoint    string // OpenAI only: "responses" (default) or "chat/completions"
	MaxTokens   int
	Temperature float64
}

// NewProvider builds a provider from the config. The zero Provider value
// resolves to Gemini, which also supplies a default model.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderGemini
	}

	switch provider {
	case ProviderGemini:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = geminiBaseURL
		}
		model := cfg.Model
		if model == "" {
			model = geminiDefaultModel
		}
		return newCompatibleProvider(ProviderGemini, cfg.APIKey, baseURL, model, cfg.MaxTokens, cfg.Temperature)
	case ProviderOpenAI:
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Endpoint, cfg.MaxTokens, cfg.Temperature)
	case ProviderAnthropic:
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens, cfg.Temperature)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		if cfg.Model == "" {
			return nil, ErrMissingModel
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens, cfg.Temperature)
	default:
		return nil, ErrInvalidProvider
	}
}
