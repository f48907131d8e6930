package oracle

import (
	"context"
	"encoding/json"
)

// CaseStudy is the business scenario generated at interview start. It is
// read-only context for every technical question in the session.
type CaseStudy struct {
	Scenario           string `json:"scenario"`
	DatasetDescription string `json:"dataset_description"`
}

// Intent classifies what the candidate is doing with their free-text reply.
type Intent string

const (
	// IntentAnswering means the candidate is directly answering the question.
	IntentAnswering Intent = "ANSWERING"
	// IntentHintRequest means the candidate asks for a hint or clarification.
	IntentHintRequest Intent = "HINT_REQUEST"
	// IntentUncertain means the candidate says they don't know or are unsure.
	// Labels outside the known set normalize to this.
	IntentUncertain Intent = "UNCERTAIN"
)

// Evaluation is the structured verdict on a technical answer.
type Evaluation struct {
	// Score is the correctness score, 1-5. 0 means the evaluator failed.
	Score         int
	Justification string

	// EfficiencyScore rates the approach, 1-5.
	EfficiencyScore         int
	EfficiencyJustification string

	// Reply is a short conversational response to show the candidate.
	Reply string
}

// BehavioralEvaluation is the structured verdict on the behavioral answer
// (structure and clarity, e.g. STAR method).
type BehavioralEvaluation struct {
	Score         int
	Justification string
}

// ReportInput is everything the final report generator needs.
type ReportInput struct {
	CandidateName string
	Role          string

	// ProfileJSON is the final skill profile serialized as JSON.
	ProfileJSON json.RawMessage
}

// Oracle is the external judgment capability the interview controller
// depends on. Every method makes exactly one LLM call; failures surface
// as errors and are never retried here.
type Oracle interface {
	// CaseStudy generates a business scenario with a small messy dataset
	// for the given target role.
	CaseStudy(ctx context.Context, role string) (CaseStudy, error)

	// Question formulates one technical question testing the given skill
	// in the context of the case study.
	Question(ctx context.Context, cs CaseStudy, role, skill string) (string, error)

	// ClassifyIntent determines what the candidate's reply is doing.
	ClassifyIntent(ctx context.Context, answer string) (Intent, error)

	// Hint produces an encouraging hint for the pending question without
	// giving away the answer.
	Hint(ctx context.Context, question string) (string, error)

	// EvaluateAnswer scores a technical answer for correctness and
	// efficiency.
	EvaluateAnswer(ctx context.Context, question, answer, skill string) (Evaluation, error)

	// BehavioralQuestion asks one standard behavioral question.
	BehavioralQuestion(ctx context.Context) (string, error)

	// EvaluateBehavioral scores the behavioral answer's structure.
	EvaluateBehavioral(ctx context.Context, question, answer string) (BehavioralEvaluation, error)

	// FinalReport writes the structured performance report.
	FinalReport(ctx context.Context, in ReportInput) (string, error)
}
