package llmprovider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"pet-agent-service/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]gemini.Message, len(req.Messages))
	for i, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		messages[i] = gemini.Message{Role: role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if resp.Text == "" {
		return nil, ErrEmptyResponse
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts any OpenAI-compatible chat endpoint to the Provider interface
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter.
// baseURL is optional; leave empty for api.openai.com.
func NewOpenAIAdapter(apiKey, model, baseURL string) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var messages []openai.ChatCompletionMessage
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == "model" || msg.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Text})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "openai",
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
