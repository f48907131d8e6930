package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "interview" }
func (s *stubScreen) Title() string                           { return "Interview" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func newTestWelcome() (*WelcomeScreen, *[]string) {
	var starts []string
	w := New(func(name, role string) screen.Screen {
		starts = append(starts, name+"/"+role)
		return &stubScreen{}
	})
	return w, &starts
}

func TestNameStepAdvancesOnEnter(t *testing.T) {
	w, starts := newTestWelcome()

	for _, r := range "Ada" {
		w.Update(keyPress(r))
	}
	w.Update(enterKey())

	if w.step != stepRole {
		t.Fatalf("step = %d, want role step", w.step)
	}
	if w.name != "Ada" {
		t.Errorf("name = %q, want Ada", w.name)
	}
	if len(*starts) != 0 {
		t.Error("interview must not start before role selection")
	}
}

func TestEmptyNameDefaultsToCandidate(t *testing.T) {
	w, _ := newTestWelcome()

	w.Update(enterKey())
	if w.name != "Candidate" {
		t.Errorf("name = %q, want Candidate", w.name)
	}
}

func TestRoleSelectionStartsInterview(t *testing.T) {
	w, starts := newTestWelcome()

	w.Update(enterKey()) // confirm default name

	// Move to the second role, then confirm.
	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := w.Update(enterKey())

	if cmd == nil {
		t.Fatal("expected a switch command")
	}
	msg := cmd()
	sw, ok := msg.(router.SwitchScreenMsg)
	if !ok {
		t.Fatalf("expected SwitchScreenMsg, got %T", msg)
	}
	if sw.Screen == nil {
		t.Fatal("switch carries no screen")
	}

	if len(*starts) != 1 {
		t.Fatalf("factory called %d times, want 1", len(*starts))
	}
	want := "Candidate/" + interview.Roles[1]
	if (*starts)[0] != want {
		t.Errorf("started with %q, want %q", (*starts)[0], want)
	}
}

func TestViewShowsRolePrompt(t *testing.T) {
	w, _ := newTestWelcome()

	for _, r := range "Sam" {
		w.Update(keyPress(r))
	}
	w.Update(enterKey())

	view := w.View(80, 24)
	if !strings.Contains(view, "Sam") {
		t.Error("role step view should greet the candidate by name")
	}
	for _, role := range interview.Roles {
		if !strings.Contains(view, role) {
			t.Errorf("role %q missing from view", role)
		}
	}
}
