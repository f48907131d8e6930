package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/store"
)

// captureRepo implements store.EventRepo and records appended events.
type captureRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, data)
	return nil
}

func (c *captureRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &captureRepo{}
	inner := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"score":4}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 20},
	})
	p := WithLogging(inner, repo)

	ctx := WithPurpose(context.Background(), "evaluation")
	_, err := p.Generate(ctx, Request{
		System:   "You are an evaluator.",
		Messages: []Message{{Role: RoleUser, Content: "judge this"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "evaluation" {
		t.Errorf("purpose = %q, want evaluation", e.Purpose)
	}
	if !e.Success {
		t.Error("expected success event")
	}
	if e.InputTokens != 100 || e.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 100/20", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "judge this") {
		t.Errorf("request body %q missing user message", e.RequestBody)
	}
	if e.ResponseBody != `{"score":4}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &captureRepo{}
	inner := NewMockProvider() // empty queue fails
	p := WithLogging(inner, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected provider error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message captured")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", e.Purpose)
	}
}

func TestLoggingProvider_RepoFailureDoesNotBreakRequest(t *testing.T) {
	repo := &captureRepo{err: errors.New("disk full")}
	inner := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(inner, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure must not fail the request: %v", err)
	}
	if resp == nil {
		t.Fatal("expected response despite logging failure")
	}
}
