package ai

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIProvider implements Provider on the OpenAI API. It also backs the
// compatible and Gemini providers via a custom base URL and the
// chat/completions endpoint.
type OpenAIProvider struct {
	client      openai.Client
	name        string
	model       string
	endpoint    string // "responses" or "chat/completions"
	maxTokens   int
	temperature float64
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model, endpoint string, maxTokens int, temperature float64) (*OpenAIProvider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	// Default to responses if not specified
	if endpoint == "" {
		endpoint = "responses"
	}

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:      client,
		name:        ProviderOpenAI,
		model:       model,
		endpoint:    endpoint,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

// NewCompatibleProvider creates a provider for any OpenAI-compatible API.
// Compatible endpoints only get the chat/completions endpoint.
func NewCompatibleProvider(apiKey, baseURL, model string, maxTokens int, temperature float64) (*OpenAIProvider, error) {
	return newCompatibleProvider(ProviderCompatible, apiKey, baseURL, model, maxTokens, temperature)
}

func newCompatibleProvider(name, apiKey, baseURL, model string, maxTokens int, temperature float64) (*OpenAIProvider, error) {
	provider, err := NewOpenAIProvider(apiKey, baseURL, model, "chat/completions", maxTokens, temperature)
	if err != nil {
		return nil, err
	}
	provider.name = name
	return provider, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Model returns the configured model identifier.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Test sends a test message and returns the response.
func (p *OpenAIProvider) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, "", "Hello world")
}

// Complete generates a response without streaming.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	if p.endpoint == "responses" {
		return p.completeWithResponses(ctx, systemPrompt, content)
	}
	return p.completeWithChat(ctx, systemPrompt, content)
}

// completeWithResponses uses the Responses API for completion.
func (p *OpenAIProvider) completeWithResponses(ctx context.Context, systemPrompt, content string) (string, error) {
	inputItems := []responses.ResponseInputItemUnionParam{}
	if systemPrompt != "" {
		inputItems = append(inputItems, responses.ResponseInputItemParamOfMessage(systemPrompt, responses.EasyInputMessageRoleSystem))
	}
	inputItems = append(inputItems, responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser))

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(p.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam(inputItems),
		},
		MaxOutputTokens: openai.Int(int64(p.maxTokens)),
		Temperature:     openai.Float(p.temperature),
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}

	// Extract text from message output items
	var result strings.Builder
	for _, item := range resp.Output {
		if item.Type == "message" {
			msg := item.AsMessage()
			for _, content := range msg.Content {
				if content.Type == "output_text" {
					result.WriteString(content.Text)
				}
			}
		}
	}

	text := strings.TrimSpace(result.String())
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// completeWithChat uses the Chat Completions API for completion.
func (p *OpenAIProvider) completeWithChat(ctx context.Context, systemPrompt, content string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    messages,
		MaxTokens:   openai.Int(int64(p.maxTokens)),
		Temperature: openai.Float(p.temperature),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
