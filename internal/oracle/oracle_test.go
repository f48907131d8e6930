package oracle

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/llm"
)

func mockJSON(t *testing.T, v any) llm.MockResponse {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: data}
}

func TestCaseStudy(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]string{
		"scenario":            "A cafe chain wants to understand weekend sales.",
		"dataset_description": "300 rows of orders with duplicate IDs.",
	}))
	o := New(mock, DefaultConfig())

	cs, err := o.CaseStudy(context.Background(), "Finance")
	if err != nil {
		t.Fatalf("CaseStudy: %v", err)
	}
	if cs.Scenario == "" || cs.DatasetDescription == "" {
		t.Errorf("incomplete case study: %+v", cs)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("case study request should be schema-constrained")
	}
	if !strings.Contains(req.Messages[0].Content, "Finance") {
		t.Error("request does not mention the role")
	}
}

func TestClassifyIntentNormalizesLabels(t *testing.T) {
	cases := []struct {
		label string
		want  Intent
	}{
		{"ANSWERING", IntentAnswering},
		{"answering", IntentAnswering},
		{"  Hint_Request ", IntentHintRequest},
		{"UNCERTAIN", IntentUncertain},
		{"SHRUG", IntentUncertain},
		{"", IntentUncertain},
	}

	for _, tc := range cases {
		mock := llm.NewMockProvider(mockJSON(t, map[string]string{"intent": tc.label}))
		o := New(mock, DefaultConfig())

		got, err := o.ClassifyIntent(context.Background(), "whatever")
		if err != nil {
			t.Fatalf("ClassifyIntent(%q): %v", tc.label, err)
		}
		if got != tc.want {
			t.Errorf("ClassifyIntent(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestClassifyIntentProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails every call
	o := New(mock, DefaultConfig())

	if _, err := o.ClassifyIntent(context.Background(), "whatever"); err == nil {
		t.Error("provider failure should surface as an error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", mock.CallCount())
	}
}

func TestEvaluateAnswer(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"score":                    4,
		"justification":            "correct use of TRIM",
		"efficiency_score":         5,
		"efficiency_justification": "one formula instead of manual edits",
		"bot_response":             "Nicely done.",
	}))
	o := New(mock, DefaultConfig())

	ev, err := o.EvaluateAnswer(context.Background(), "How would you clean this?", "Use TRIM.", "Data Cleaning")
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if ev.Score != 4 || ev.EfficiencyScore != 5 {
		t.Errorf("scores = %d/%d, want 4/5", ev.Score, ev.EfficiencyScore)
	}
	if ev.Reply != "Nicely done." {
		t.Errorf("reply = %q", ev.Reply)
	}
}

func TestEvaluateAnswerDefaultsReply(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"score":         2,
		"justification": "vague",
	}))
	o := New(mock, DefaultConfig())

	ev, err := o.EvaluateAnswer(context.Background(), "q", "a", "Data Analysis")
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if ev.Reply == "" {
		t.Error("missing bot_response should be substituted, not empty")
	}
}

func TestEvaluateBehavioral(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"score":         3,
		"justification": "has situation and result, missing actions",
	}))
	o := New(mock, DefaultConfig())

	ev, err := o.EvaluateBehavioral(context.Background(), "q", "a")
	if err != nil {
		t.Fatalf("EvaluateBehavioral: %v", err)
	}
	if ev.Score != 3 {
		t.Errorf("score = %d, want 3", ev.Score)
	}
}

func TestFinalReportTrimsText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("\n  Overall summary.\n"),
	})
	o := New(mock, DefaultConfig())

	text, err := o.FinalReport(context.Background(), ReportInput{
		CandidateName: "Sam",
		Role:          "Finance",
		ProfileJSON:   json.RawMessage(`{}`),
	})
	if err != nil {
		t.Fatalf("FinalReport: %v", err)
	}
	if text != "Overall summary." {
		t.Errorf("text = %q", text)
	}

	req := mock.Calls[0]
	if req.MaxTokens != DefaultConfig().ReportMaxTokens {
		t.Errorf("report max tokens = %d, want %d", req.MaxTokens, DefaultConfig().ReportMaxTokens)
	}
}

func TestQuestionUsesCaseStudyContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("How would you remove the duplicate order IDs?"),
	})
	o := New(mock, DefaultConfig())

	cs := CaseStudy{
		Scenario:           "A cafe chain reviews weekend sales.",
		DatasetDescription: "Orders with duplicate IDs.",
	}
	q, err := o.Question(context.Background(), cs, "Finance", "Data Cleaning")
	if err != nil {
		t.Fatalf("Question: %v", err)
	}
	if q == "" {
		t.Error("empty question")
	}

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, cs.Scenario) || !strings.Contains(sent, "Data Cleaning") {
		t.Error("question prompt missing case study or skill context")
	}
}
