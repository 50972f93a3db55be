package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"atrova/pkg/gemini"
	"atrova/pkg/qwen"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	err        error
	truncated  bool
	text       string
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return &Response{Text: m.text, ProviderName: m.name, ModelName: m.model, Truncated: m.truncated}, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerate_ReturnsText(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", text: `{"task": "buy milk"}`}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, logger)

	text, err := manager.Generate(context.Background(), "[INST] buy milk [/INST]", 256, 0.001)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if text != `{"task": "buy milk"}` {
		t.Errorf("Unexpected text: %q", text)
	}
	if primary.lastReq.MaxTokens != 256 || primary.lastReq.Temperature != 0.001 {
		t.Errorf("Sampling parameters not forwarded: %+v", primary.lastReq)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", text: "hello"}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}
	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if resp.Usage == nil {
		t.Error("Usage should never be nil")
	}

	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn, got: %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}
	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "secondary" {
		t.Errorf("Expected last ProviderError from secondary, got: %v", err)
	}

	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected 2 calls each, got: %d/%d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_DefaultsMakeSingleAttempt(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", text: "unused"}

	manager := NewManager([]Provider{primary, secondary}, nil, &mockLogger{})

	_, err := manager.Generate(context.Background(), "Hello", 256, 0.001)
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if primary.callCount != 1 {
		t.Errorf("Expected a single attempt, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_InvalidInput(t *testing.T) {
	manager := NewManager([]Provider{}, &Config{}, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}

	manager = NewManager([]Provider{&mockProvider{name: "p"}}, &Config{}, &mockLogger{})
	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
}

func TestGenerateContent_ContextCancelled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", text: "x"}
	manager := NewManager([]Provider{primary}, &Config{MaxTotalTimeout: time.Second}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.GenerateContent(ctx, &Request{Prompt: "Hello"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Provider should not be called after cancellation")
	}
}

func TestGenerateContent_ClientErrorIsNotRetried(t *testing.T) {
	primary := &mockProvider{name: "qwen", model: "m", err: &qwen.APIError{StatusCode: http.StatusUnauthorized, Message: "bad key"}}
	secondary := &mockProvider{name: "gemini", model: "m", text: `{"task": "x"}`}
	config := &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}
	manager := NewManager([]Provider{primary, secondary}, config, &mockLogger{})

	text, err := manager.Generate(context.Background(), "Hello", 256, 0.001)
	if err != nil {
		t.Fatalf("Expected fallback to succeed, got: %v", err)
	}
	if text != `{"task": "x"}` {
		t.Errorf("Unexpected text: %q", text)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected one attempt on a 401, got: %d", primary.callCount)
	}
}

func TestGenerateContent_RateLimitIsRetried(t *testing.T) {
	primary := &mockProvider{name: "qwen", model: "m", err: &qwen.APIError{StatusCode: http.StatusTooManyRequests}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	if _, err := manager.Generate(context.Background(), "Hello", 256, 0.001); err == nil {
		t.Fatal("Expected error")
	}
	if primary.callCount != 3 {
		t.Errorf("Expected 3 attempts on a 429, got: %d", primary.callCount)
	}
}

func TestGenerateContent_TruncatedIsLogged(t *testing.T) {
	primary := &mockProvider{name: "gemini", model: "m", text: `{"task": "buy`, truncated: true}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, nil, logger)

	if _, err := manager.Generate(context.Background(), "Hello", 8, 0.001); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected a truncation warning, got: %v", logger.warnMessages)
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{context.DeadlineExceeded, false},
		{errors.New("connection reset by peer"), true},
		{&qwen.APIError{StatusCode: http.StatusBadRequest}, false},
		{&qwen.APIError{StatusCode: http.StatusServiceUnavailable}, true},
		{&ProviderError{Provider: "qwen", Err: &qwen.APIError{StatusCode: http.StatusForbidden}}, false},
		{fmt.Errorf("%w: SAFETY", gemini.ErrPromptBlocked), false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
