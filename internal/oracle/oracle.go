package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/intervu/internal/llm"
)

// Config tunes oracle LLM calls.
type Config struct {
	// MaxTokens caps conversational responses (questions, hints, replies).
	MaxTokens int

	// ReportMaxTokens caps the final report, which runs longer.
	ReportMaxTokens int

	// Temperature for generation. Evaluation calls always run at 0.
	Temperature float64
}

// DefaultConfig returns the standard oracle configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       1024,
		ReportMaxTokens: 2048,
		Temperature:     0.7,
	}
}

// llmOracle implements Oracle on top of an llm.Provider. All default
// substitution for missing or loose LLM output happens here, at the
// adapter boundary, so callers see fully-populated typed results or an
// error, never half-filled blobs.
type llmOracle struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Oracle backed by the given provider.
func New(provider llm.Provider, cfg Config) Oracle {
	return &llmOracle{provider: provider, cfg: cfg}
}

func (o *llmOracle) CaseStudy(ctx context.Context, role string) (CaseStudy, error) {
	ctx = llm.WithPurpose(ctx, "case-study")

	raw, err := o.generateStructured(ctx, interviewerSystemPrompt, buildCaseStudyMessage(role), CaseStudySchema)
	if err != nil {
		return CaseStudy{}, err
	}

	var cs CaseStudy
	if err := json.Unmarshal(raw, &cs); err != nil {
		return CaseStudy{}, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}
	return cs, nil
}

func (o *llmOracle) Question(ctx context.Context, cs CaseStudy, role, skill string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question")
	return o.generateText(ctx, interviewerSystemPrompt, buildQuestionMessage(cs, role, skill), o.cfg.Temperature)
}

func (o *llmOracle) ClassifyIntent(ctx context.Context, answer string) (Intent, error) {
	ctx = llm.WithPurpose(ctx, "intent")

	raw, err := o.generateStructured(ctx, evaluatorSystemPrompt, buildIntentMessage(answer), IntentSchema)
	if err != nil {
		return IntentUncertain, err
	}

	var out struct {
		Intent string `json:"intent"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return IntentUncertain, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}

	return normalizeIntent(out.Intent), nil
}

// normalizeIntent maps the model's label onto the known intents.
// Anything unrecognized counts as UNCERTAIN.
func normalizeIntent(label string) Intent {
	switch Intent(strings.ToUpper(strings.TrimSpace(label))) {
	case IntentAnswering:
		return IntentAnswering
	case IntentHintRequest:
		return IntentHintRequest
	default:
		return IntentUncertain
	}
}

func (o *llmOracle) Hint(ctx context.Context, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, "hint")
	return o.generateText(ctx, interviewerSystemPrompt, buildHintMessage(question), o.cfg.Temperature)
}

func (o *llmOracle) EvaluateAnswer(ctx context.Context, question, answer, skill string) (Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	raw, err := o.generateStructured(ctx, evaluatorSystemPrompt, buildEvaluationMessage(question, answer, skill), EvaluationSchema)
	if err != nil {
		return Evaluation{}, err
	}

	var out struct {
		Score                   int    `json:"score"`
		Justification           string `json:"justification"`
		EfficiencyScore         int    `json:"efficiency_score"`
		EfficiencyJustification string `json:"efficiency_justification"`
		BotResponse             string `json:"bot_response"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return Evaluation{}, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}

	ev := Evaluation{
		Score:                   out.Score,
		Justification:           out.Justification,
		EfficiencyScore:         out.EfficiencyScore,
		EfficiencyJustification: out.EfficiencyJustification,
		Reply:                   out.BotResponse,
	}
	if ev.Reply == "" {
		ev.Reply = "Okay, thank you for that."
	}
	return ev, nil
}

func (o *llmOracle) BehavioralQuestion(ctx context.Context) (string, error) {
	ctx = llm.WithPurpose(ctx, "behavioral-question")
	return o.generateText(ctx, interviewerSystemPrompt, behavioralQuestionMessage, o.cfg.Temperature)
}

func (o *llmOracle) EvaluateBehavioral(ctx context.Context, question, answer string) (BehavioralEvaluation, error) {
	ctx = llm.WithPurpose(ctx, "behavioral-evaluation")

	raw, err := o.generateStructured(ctx, hiringManagerSystemPrompt, buildBehavioralEvalMessage(question, answer), BehavioralEvaluationSchema)
	if err != nil {
		return BehavioralEvaluation{}, err
	}

	var out struct {
		Score         int    `json:"score"`
		Justification string `json:"justification"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return BehavioralEvaluation{}, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}
	return BehavioralEvaluation{Score: out.Score, Justification: out.Justification}, nil
}

func (o *llmOracle) FinalReport(ctx context.Context, in ReportInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "report")

	req := llm.Request{
		System: hiringManagerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportMessage(in)},
		},
		MaxTokens:   o.cfg.ReportMaxTokens,
		Temperature: o.cfg.Temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("final report: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// generateText issues a free-text completion.
func (o *llmOracle) generateText(ctx context.Context, system, user string, temperature float64) (string, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// generateStructured issues a schema-constrained completion. The provider
// validates the response against the schema before returning it.
func (o *llmOracle) generateStructured(ctx context.Context, system, user string, schema *llm.Schema) (json.RawMessage, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:    schema,
		MaxTokens: o.cfg.MaxTokens,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}
