package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	datas := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "case-study", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "evaluation", InputTokens: 200, OutputTokens: 40, LatencyMs: 650, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "hint", Success: false, ErrorMessage: "rate limited"},
	}
	for _, d := range datas {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "hint" {
		t.Errorf("first event purpose = %q, want hint", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("hint event should be a failure")
	}
	if events[2].InputTokens != 100 {
		t.Errorf("oldest event input tokens = %d, want 100", events[2].InputTokens)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d events, want 1", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "evaluation" {
		t.Fatalf("get returned %+v", got)
	}
}

func TestInterviewLogRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	data := InterviewLogData{
		SessionID:     "session-1",
		CandidateName: "Ada",
		Role:          "Finance",
		SkillProfile: map[string]SkillRecordData{
			"Data Cleaning": {Status: "Assessed", Score: 5, Efficiency: 4, Evidence: "Q: q\nA: a\nEval: good"},
			"Behavioral":    {Status: "Assessed", Score: 3, Evidence: "structured answer"},
		},
		Report: "Overall strong.",
		Transcript: []TranscriptEntryData{
			{Role: "assistant", Content: "Hello!"},
			{Role: "user", Content: "Hi."},
		},
		CreatedAt: now,
	}

	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}

	rows, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].CandidateName != "Ada" || rows[0].SessionID != "session-1" {
		t.Errorf("unexpected summary: %+v", rows[0])
	}

	got, err := repo.Get(ctx, rows[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.Report != "Overall strong." {
		t.Errorf("report = %q", got.Report)
	}
	if got.SkillProfile["Data Cleaning"].Score != 5 {
		t.Errorf("score = %d, want 5", got.SkillProfile["Data Cleaning"].Score)
	}
	if len(got.Transcript) != 2 || got.Transcript[1].Role != "user" {
		t.Errorf("unexpected transcript: %+v", got.Transcript)
	}
}

func TestInterviewLogListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, InterviewLogData{
			SessionID:     string(rune('a' + i)),
			CandidateName: "C",
			Role:          "Operations",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	rows, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].SessionID != "c" {
		t.Errorf("first row = %q, want newest (c)", rows[0].SessionID)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INTERVU_DB", dir+"/sub/intervu.db")

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != dir+"/sub/intervu.db" {
		t.Errorf("path = %q", p)
	}
}
