package qwen_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atrova/pkg/qwen"
)

func TestGenerateContent(t *testing.T) {
	var got struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "{\"date\": \"2024-01-02 17:00:00\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 40, "completion_tokens": 12, "total_tokens": 52}
		}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "sk-test", Model: "deepseek-chat", BaseURL: ts.URL + "/v1/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		SystemInstruction: "be terse",
		Prompt:            "dentist tomorrow",
		MaxTokens:         256,
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Text != `{"date": "2024-01-02 17:00:00"}` {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 52 {
		t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
	}

	if got.Model != "deepseek-chat" || got.MaxTokens != 256 {
		t.Errorf("unexpected request: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "dentist tomorrow" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestGenerateContent_Errors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer ts.Close()

	client, _ := qwen.New(qwen.Config{APIKey: "k", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &qwen.Request{Prompt: "x"})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Errorf("expected 502 error, got %v", err)
	}

	if _, err := client.GenerateContent(context.Background(), &qwen.Request{}); err != qwen.ErrEmptyPrompt {
		t.Errorf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestGenerateContent_APIErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer ts.Close()

	client, _ := qwen.New(qwen.Config{APIKey: "bad", BaseURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &qwen.Request{Prompt: "x"})

	var apiErr *qwen.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Incorrect API key provided" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
	if apiErr.Retryable() {
		t.Error("401 must not be retryable")
	}
	if !(&qwen.APIError{StatusCode: http.StatusTooManyRequests}).Retryable() {
		t.Error("429 must be retryable")
	}
}
