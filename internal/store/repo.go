package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request, as returned by queries.
type LLMEvent struct {
	ID int
	LLMRequestEventData
	Timestamp time.Time
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}

// SkillRecordData is one skill's evaluation record in a persisted log.
type SkillRecordData struct {
	Status     string
	Score      int
	Efficiency int
	Evidence   string
}

// TranscriptEntryData is one transcript message in a persisted log.
type TranscriptEntryData struct {
	Role    string
	Content string
}

// InterviewLogData is the archived record of one completed interview.
type InterviewLogData struct {
	SessionID     string
	CandidateName string
	Role          string
	SkillProfile  map[string]SkillRecordData
	Report        string
	Transcript    []TranscriptEntryData
	CreatedAt     time.Time
}

// InterviewLogSummary is a list row for archived interviews.
type InterviewLogSummary struct {
	ID            int
	SessionID     string
	CandidateName string
	Role          string
	CreatedAt     time.Time
}

// InterviewRepo archives completed interview sessions.
type InterviewRepo interface {
	// Save stores the final record of a completed interview.
	Save(ctx context.Context, data InterviewLogData) error

	// List returns archived interviews, newest first.
	List(ctx context.Context, limit int) ([]InterviewLogSummary, error)

	// Get returns the full archived record by row ID.
	Get(ctx context.Context, id int) (*InterviewLogData, error)
}
