package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrEmptyInputs is returned when a request carries no input text.
var ErrEmptyInputs = errors.New("huggingface: inputs are empty")

func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	return &huggingFaceImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// TextGeneration calls the text-generation task. Only the continuation is
// returned, never the echoed prompt.
func (h *huggingFaceImpl) TextGeneration(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Inputs == "" {
		return nil, ErrEmptyInputs
	}

	body, err := json.Marshal(hfRequest{
		Inputs: req.Inputs,
		Parameters: hfParameters{
			MaxNewTokens:   req.MaxNewTokens,
			Temperature:    req.Temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/"+h.model, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(raw)
		var apiErr hfError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return decodeGeneration(raw)
}

// Model returns the model being used
func (h *huggingFaceImpl) Model() string {
	return h.model
}

// decodeGeneration accepts both the list form and the single-object form of the response.
func decodeGeneration(raw []byte) (*Response, error) {
	var list []hfGeneration
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return &Response{}, nil
		}
		return &Response{GeneratedText: list[0].GeneratedText}, nil
	}

	var single hfGeneration
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("huggingface: failed to decode response: %w", err)
	}
	return &Response{GeneratedText: single.GeneratedText}, nil
}
