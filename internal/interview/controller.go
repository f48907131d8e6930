package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/intervu/internal/oracle"
)

// Fallback content used when the oracle fails mid-interview. The
// candidate never sees a raw error; the interview always continues.
const (
	fallbackReply         = "My apologies, there was a system error. Let's continue."
	fallbackJustification = "error"
)

// Controller drives a session through the interview phases. It owns all
// session mutation, delegates every judgment call to the oracle, and
// returns transcript entries for the caller to render. It never touches
// storage or UI itself.
//
// Oracle failures are absorbed here: a failed call produces exactly one
// fallback result (never a retry) and the state machine proceeds as if a
// valid, degenerate result had been received. A session can always reach
// PhaseReportReady, even under total oracle outage.
type Controller struct {
	oracle oracle.Oracle
}

// NewController creates a Controller backed by the given oracle.
func NewController(o oracle.Oracle) *Controller {
	return &Controller{oracle: o}
}

// Begin starts the interview: generates the case study, introduces it,
// and asks the first technical question. The returned entries are the
// new assistant messages, already appended to the session transcript.
func (c *Controller) Begin(ctx context.Context, candidateName, role string) (*Session, []Entry) {
	s := NewSession(candidateName, role)

	var entries []Entry
	entries = append(entries, s.append(Entry{
		Speaker: SpeakerAssistant,
		Text:    fmt.Sprintf("Hello %s! Welcome to the interview. The role is set to %s.", candidateName, role),
	})...)

	s.Phase = PhaseCaseStudyIntro
	cs, err := c.oracle.CaseStudy(ctx, role)
	if err != nil {
		cs = oracle.CaseStudy{
			Scenario:           "A small business has shared a spreadsheet of recent records with you.",
			DatasetDescription: "A table with a handful of columns and rows, containing some messy values.",
		}
	}
	s.CaseStudy = cs

	intro := fmt.Sprintf(
		"Okay, let's dive into a practical case study.\n\nScenario: %s\n\nDataset: %s\n\nLet's tackle this in a few steps. First, let's talk about cleaning this data.",
		cs.Scenario, cs.DatasetDescription,
	)
	entries = append(entries, s.append(Entry{Speaker: SpeakerAssistant, Text: intro})...)

	// The intro phase is transient: the first technical question follows
	// immediately.
	entries = append(entries, c.advance(ctx, s)...)

	return s, entries
}

// Respond processes one candidate reply according to the current phase.
// The returned entries are the new messages (candidate's included). The
// error return reports internal invariant violations only; it is nil
// for every input reachable through normal use.
func (c *Controller) Respond(ctx context.Context, s *Session, text string) ([]Entry, error) {
	switch s.Phase {
	case PhaseTechnical:
		return c.respondTechnical(ctx, s, text)
	case PhaseBehavioral:
		return c.respondBehavioral(ctx, s, text)
	default:
		// No question is pending outside the questioning phases.
		return nil, nil
	}
}

func (c *Controller) respondTechnical(ctx context.Context, s *Session, text string) ([]Entry, error) {
	entries := s.append(Entry{Speaker: SpeakerCandidate, Text: text})

	intent, err := c.oracle.ClassifyIntent(ctx, text)
	if err != nil {
		// An unclassifiable reply is treated as "doesn't know" so the
		// interview keeps moving.
		intent = oracle.IntentUncertain
	}

	switch intent {
	case oracle.IntentAnswering:
		ev, err := c.oracle.EvaluateAnswer(ctx, s.CurrentQuestion, text, string(s.CurrentSkill))
		if err != nil {
			ev = oracle.Evaluation{
				Justification: fallbackJustification,
				Reply:         fallbackReply,
			}
		}
		evidence := formatEvidence(s.CurrentQuestion, text, ev.Justification, ev.EfficiencyJustification)
		if err := s.Profile.RecordResult(s.CurrentSkill, ev.Score, ev.EfficiencyScore, evidence); err != nil {
			return entries, err
		}
		entries = append(entries, s.append(Entry{Speaker: SpeakerAssistant, Text: ev.Reply})...)
		entries = append(entries, c.advance(ctx, s)...)

	case oracle.IntentHintRequest:
		hint, err := c.oracle.Hint(ctx, s.CurrentQuestion)
		if err != nil {
			hint = fallbackReply
		}
		// The same question stays pending; skill status is untouched.
		entries = append(entries, s.append(Entry{
			Speaker: SpeakerAssistant,
			Text:    "Of course. Here's a hint: " + hint,
		})...)

	default: // IntentUncertain and anything unrecognized
		if err := s.Profile.MarkSkipped(s.CurrentSkill); err != nil {
			return entries, err
		}
		entries = append(entries, s.append(Entry{Speaker: SpeakerAssistant, Text: "No problem, let's move on."})...)
		entries = append(entries, c.advance(ctx, s)...)
	}

	return entries, nil
}

func (c *Controller) respondBehavioral(ctx context.Context, s *Session, text string) ([]Entry, error) {
	entries := s.append(Entry{Speaker: SpeakerCandidate, Text: text})

	ev, err := c.oracle.EvaluateBehavioral(ctx, s.CurrentQuestion, text)
	if err != nil {
		ev = oracle.BehavioralEvaluation{Justification: fallbackJustification}
	}

	evidence := formatEvidence(s.CurrentQuestion, text, ev.Justification, "")
	if err := s.Profile.RecordResult(SkillBehavioral, ev.Score, 0, evidence); err != nil {
		return entries, err
	}

	entries = append(entries, s.append(Entry{Speaker: SpeakerAssistant, Text: "Thank you for sharing that."})...)

	s.Phase = PhaseReportReady
	s.CurrentQuestion = ""

	return entries, nil
}

// advance moves the technical questioning forward: it asks the next
// untested technical skill, or falls through to the behavioral phase once
// none remain.
func (c *Controller) advance(ctx context.Context, s *Session) []Entry {
	if skill, ok := s.Profile.NextUntested(TechnicalSkills); ok {
		s.Phase = PhaseTechnical
		s.CurrentSkill = skill

		q, err := c.oracle.Question(ctx, s.CaseStudy, s.Role, string(skill))
		if err != nil {
			q = fallbackReply
		}
		s.CurrentQuestion = q
		return s.append(Entry{Speaker: SpeakerAssistant, Text: q})
	}

	// All technical skills visited. One behavioral question, then done.
	s.Phase = PhaseBehavioral
	s.CurrentSkill = ""

	entries := s.append(Entry{
		Speaker: SpeakerAssistant,
		Text:    "Great, that concludes the technical case study. Let's move on to one final behavioral question.",
	})

	q, err := c.oracle.BehavioralQuestion(ctx)
	if err != nil {
		q = fallbackReply
	}
	s.CurrentQuestion = q
	entries = append(entries, s.append(Entry{Speaker: SpeakerAssistant, Text: q})...)

	return entries
}

// CurrentPrompt returns the question awaiting a response, or "" if none.
func (c *Controller) CurrentPrompt(s *Session) string {
	return s.CurrentQuestion
}

// IsFinished reports whether the interview has reached the report phase.
func (c *Controller) IsFinished(s *Session) bool {
	return s.Phase == PhaseReportReady
}

// Report generates the final performance report text. Valid only once the
// session is finished. Persistence is the caller's concern; the report
// package snapshots and archives the session.
func (c *Controller) Report(ctx context.Context, s *Session) (string, error) {
	if !c.IsFinished(s) {
		return "", fmt.Errorf("report requested in phase %s", s.Phase)
	}

	profileJSON, err := json.MarshalIndent(s.Profile.Snapshot(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal skill profile: %w", err)
	}

	report, err := c.oracle.FinalReport(ctx, oracle.ReportInput{
		CandidateName: s.CandidateName,
		Role:          s.Role,
		ProfileJSON:   profileJSON,
	})
	if err != nil || report == "" {
		report = fmt.Sprintf(
			"Performance report for %s (%s role): the automated report generator was unavailable. The recorded skill profile follows.\n\n%s",
			s.CandidateName, s.Role, string(profileJSON),
		)
	}

	return report, nil
}

// formatEvidence builds the per-skill evidence trail: the question, the
// candidate's literal answer, and the evaluator's justification(s).
func formatEvidence(question, answer, justification, efficiencyJustification string) string {
	evidence := fmt.Sprintf("Q: %s\nA: %s\nEval: %s", question, answer, justification)
	if efficiencyJustification != "" {
		evidence += "\nEfficiency: " + efficiencyJustification
	}
	return evidence
}
