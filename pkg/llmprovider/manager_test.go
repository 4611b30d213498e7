package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, kv ...any)    {}
func (m *mockLogger) Debugf(ctx context.Context, format string, a ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, kv ...any)     {}
func (m *mockLogger) Infof(ctx context.Context, format string, a ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, kv ...any)     {}
func (m *mockLogger) Warnf(ctx context.Context, format string, a ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, kv ...any)    {}
func (m *mockLogger) Errorf(ctx context.Context, format string, a ...any) {}

type mockProvider struct {
	name     string
	resp     *Response
	err      error
	callsPtr *int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.callsPtr != nil {
		*m.callsPtr++
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

func okResponse(text string) *Response {
	return &Response{
		Content: Message{Role: "assistant", Parts: []Part{{Text: text}}},
		Usage:   &Usage{},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("no providers", func(t *testing.T) {
		m := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})
		_, err := m.GenerateContent(ctx, &Request{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("first provider succeeds", func(t *testing.T) {
		m := NewManager([]Provider{
			&mockProvider{name: "groq", resp: okResponse("hello")},
		}, &Config{RetryAttempts: 1, FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "hello" {
			t.Errorf("expected 'hello', got %q", resp.Text())
		}
	})

	t.Run("falls back to second provider", func(t *testing.T) {
		m := NewManager([]Provider{
			&mockProvider{name: "groq", err: errors.New("rate limited")},
			&mockProvider{name: "openai", resp: okResponse("fallback answer")},
		}, &Config{RetryAttempts: 1, FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "fallback answer" {
			t.Errorf("expected fallback answer, got %q", resp.Text())
		}
	})

	t.Run("fallback disabled stops after first", func(t *testing.T) {
		secondCalls := 0
		m := NewManager([]Provider{
			&mockProvider{name: "groq", err: errors.New("down")},
			&mockProvider{name: "openai", resp: okResponse("unused"), callsPtr: &secondCalls},
		}, &Config{RetryAttempts: 1, FallbackEnabled: false}, &mockLogger{})

		_, err := m.GenerateContent(ctx, &Request{})
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if secondCalls != 0 {
			t.Errorf("second provider should not be called, got %d calls", secondCalls)
		}
	})

	t.Run("retries before giving up", func(t *testing.T) {
		calls := 0
		m := NewManager([]Provider{
			&mockProvider{name: "groq", err: errors.New("transient"), callsPtr: &calls},
		}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond, FallbackEnabled: true}, &mockLogger{})

		_, err := m.GenerateContent(ctx, &Request{})
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 3 {
			t.Errorf("expected 3 attempts, got %d", calls)
		}
	})
}

func TestResponse_Helpers(t *testing.T) {
	resp := &Response{Content: Message{Parts: []Part{
		{Text: "part one "},
		{Text: "part two"},
	}}}
	if resp.Text() != "part one part two" {
		t.Errorf("unexpected text: %q", resp.Text())
	}
	if resp.FunctionCall() != nil {
		t.Error("expected nil function call")
	}

	resp = &Response{Content: Message{Parts: []Part{
		{FunctionCall: &FunctionCall{Name: "set_appointment"}},
	}}}
	fc := resp.FunctionCall()
	if fc == nil || fc.Name != "set_appointment" {
		t.Errorf("expected set_appointment call, got %+v", fc)
	}
}
