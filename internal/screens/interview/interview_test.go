package interview

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/oracle"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
)

// scriptedOracle answers every call with fixed content.
type scriptedOracle struct{}

func (scriptedOracle) CaseStudy(context.Context, string) (oracle.CaseStudy, error) {
	return oracle.CaseStudy{Scenario: "scenario", DatasetDescription: "dataset"}, nil
}

func (scriptedOracle) Question(_ context.Context, _ oracle.CaseStudy, _, skill string) (string, error) {
	return "question about " + skill, nil
}

func (scriptedOracle) ClassifyIntent(context.Context, string) (oracle.Intent, error) {
	return oracle.IntentAnswering, nil
}

func (scriptedOracle) Hint(context.Context, string) (string, error) {
	return "a hint", nil
}

func (scriptedOracle) EvaluateAnswer(context.Context, string, string, string) (oracle.Evaluation, error) {
	return oracle.Evaluation{Score: 4, Justification: "fine", Reply: "Good."}, nil
}

func (scriptedOracle) BehavioralQuestion(context.Context) (string, error) {
	return "behavioral question", nil
}

func (scriptedOracle) EvaluateBehavioral(context.Context, string, string) (oracle.BehavioralEvaluation, error) {
	return oracle.BehavioralEvaluation{Score: 3, Justification: "ok"}, nil
}

func (scriptedOracle) FinalReport(context.Context, oracle.ReportInput) (string, error) {
	return "report", nil
}

type stubReport struct{}

func (s *stubReport) Init() tea.Cmd                           { return nil }
func (s *stubReport) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubReport) View(int, int) string                    { return "report" }
func (s *stubReport) Title() string                           { return "Report" }

func newTestScreen() *InterviewScreen {
	ctrl := iv.NewController(scriptedOracle{})
	return New(ctrl, "Sam", "Finance", func(*iv.Session) screen.Screen {
		return &stubReport{}
	})
}

// runBegin drives Init's command to completion and applies the result.
func runBegin(t *testing.T, m *InterviewScreen) {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	applyBatch(t, m, cmd)
	if m.session == nil {
		t.Fatal("no session after Init command")
	}
}

// applyBatch executes a command (possibly a batch) and feeds every
// produced message back into the screen.
func applyBatch(t *testing.T, m *InterviewScreen, cmd tea.Cmd) {
	t.Helper()
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			applyBatch(t, m, c)
		}
		return
	}
	if msg == nil {
		return
	}
	m.Update(msg)
}

func TestInitBeginsInterview(t *testing.T) {
	m := newTestScreen()
	runBegin(t, m)

	if m.thinking {
		t.Error("thinking should clear once the session is ready")
	}
	if m.session.Phase != iv.PhaseTechnical {
		t.Errorf("phase = %s, want technical", m.session.Phase)
	}

	view := m.View(80, 24)
	if !strings.Contains(view, "scenario") {
		t.Error("view missing case study scenario")
	}
}

func TestEnterSendsAnswer(t *testing.T) {
	m := newTestScreen()
	runBegin(t, m)

	for _, r := range "pivot" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a respond command")
	}
	if !m.thinking {
		t.Error("screen should be thinking while the controller works")
	}

	m.Update(cmd())
	if m.thinking {
		t.Error("thinking should clear after the reply")
	}
	if m.session.CurrentSkill != iv.SkillDataAnalysis {
		t.Errorf("current skill = %q, want %q", m.session.CurrentSkill, iv.SkillDataAnalysis)
	}
}

func TestEmptyInputIgnored(t *testing.T) {
	m := newTestScreen()
	runBegin(t, m)

	before := len(m.session.Transcript)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty input should not produce a command")
	}
	if len(m.session.Transcript) != before {
		t.Error("empty input should not touch the transcript")
	}
}

func TestFinishSwitchesToReport(t *testing.T) {
	m := newTestScreen()
	runBegin(t, m)

	// Answer every technical question plus the behavioral one.
	answers := len(iv.TechnicalSkills) + 1
	var switched bool
	for i := 0; i < answers; i++ {
		for _, r := range "answer" {
			m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		}
		_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("answer %d produced no command", i)
		}
		_, next := m.Update(cmd())
		if next != nil {
			if sw, ok := next().(router.SwitchScreenMsg); ok {
				switched = true
				if _, ok := sw.Screen.(*stubReport); !ok {
					t.Errorf("switched to %T, want report screen", sw.Screen)
				}
			}
		}
	}

	if !switched {
		t.Error("interview never switched to the report screen")
	}
}
