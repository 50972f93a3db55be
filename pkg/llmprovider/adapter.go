package llmprovider

import (
	"context"

	"atrova/pkg/gemini"
	"atrova/pkg/huggingface"
	"atrova/pkg/qwen"
)

// HuggingFaceAdapter adapts pkg/huggingface to llmprovider.Provider interface.
// The prompt is sent as-is; instruction markers are the caller's concern.
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
}

// NewHuggingFaceAdapter creates a new Hugging Face adapter
func NewHuggingFaceAdapter(client huggingface.IHuggingFace) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *HuggingFaceAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	inputs := req.Prompt
	if req.SystemInstruction != "" {
		inputs = req.SystemInstruction + "\n\n" + inputs
	}

	resp, err := a.client.TextGeneration(ctx, &huggingface.Request{
		Inputs:       inputs,
		MaxNewTokens: req.MaxTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.GeneratedText,
		ProviderName: ProviderHuggingFace,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *HuggingFaceAdapter) Name() string {
	return ProviderHuggingFace
}

// Model returns model name
func (a *HuggingFaceAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Truncated:    resp.FinishReason == gemini.FinishReasonMaxTokens,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/qwen to llmprovider.Provider interface.
// name distinguishes qwen from deepseek, which share the wire format.
type OpenAIAdapter struct {
	name   string
	client qwen.IQwen
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible backend
func NewOpenAIAdapter(name string, client qwen.IQwen) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Truncated:    resp.FinishReason == qwen.FinishReasonLength,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
