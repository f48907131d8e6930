package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepRole
)

// WelcomeScreen collects the candidate's name and target role before the
// interview begins. The role list is the closed set the interviewer
// supports; the rest of the system treats it as an opaque string.
type WelcomeScreen struct {
	start func(name, role string) screen.Screen

	step  step
	input components.TextInput
	menu  components.Menu
	name  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. start builds the interview screen once
// both fields are confirmed.
func New(start func(name, role string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		start: start,
		input: components.NewTextInput("Your name...", 40),
		menu:  components.NewMenu(interview.Roles),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Get Started"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.step == stepName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose role"},
		{Key: "Enter", Description: "Start interview"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch w.step {
	case stepName:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				name = "Candidate"
			}
			w.name = name
			w.step = stepRole
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	case stepRole:
		menu, confirmed := w.menu.Update(msg)
		w.menu = menu
		if confirmed {
			next := w.start(w.name, w.menu.Value())
			return w, func() tea.Msg {
				return router.SwitchScreenMsg{Screen: next}
			}
		}
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Render("AI-Powered Excel Mock Interviewer")
	subtitle := theme.Subtitle.Render("A case-study interview to practice your practical Excel skills.")

	var form string
	switch w.step {
	case stepName:
		form = theme.Body.Render("Enter your name:") + "\n\n" + w.input.View()
	case stepRole:
		form = theme.Body.Render("Hi "+w.name+"! Select the role you're applying for:") + "\n\n" + w.menu.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		subtitle,
		"",
		"",
		theme.Card.Render(form),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
