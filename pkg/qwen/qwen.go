package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newQwenImpl(cfg Config) *qwenImpl {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent posts one user turn, plus an optional system turn, to /chat/completions.
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	raw, err := q.post(ctx, "/chat/completions", q.buildRequest(req))
	if err != nil {
		return nil, err
	}

	var completion chatCompletion
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("qwen: decode completion: %w", err)
	}
	return completion.toResponse(), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

func (q *qwenImpl) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("qwen: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, q.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: call %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("qwen: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

func (q *qwenImpl) buildRequest(req *Request) chatRequest {
	messages := make([]chatMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, chatMessage{Role: roleSystem, Content: req.SystemInstruction})
	}
	messages = append(messages, chatMessage{Role: roleUser, Content: req.Prompt})

	return chatRequest{
		Model:       q.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}

func newAPIError(status int, raw []byte) *APIError {
	var body chatError
	if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		return &APIError{StatusCode: status, Message: body.Error.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}
}

func (c chatCompletion) toResponse() *Response {
	out := &Response{Usage: &Usage{
		InputTokens:  c.Usage.PromptTokens,
		OutputTokens: c.Usage.CompletionTokens,
		TotalTokens:  c.Usage.TotalTokens,
	}}
	if len(c.Choices) > 0 {
		out.Text = c.Choices[0].Message.Content
		out.FinishReason = c.Choices[0].FinishReason
	}
	return out
}
