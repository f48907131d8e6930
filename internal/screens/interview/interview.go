// Package interview implements the chat screen that hosts a live
// interview session. It owns no interview logic: every candidate turn
// is handed to the controller in a command, and the screen re-renders
// whatever the session transcript holds when the command returns.
package interview

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/router"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
)

// InterviewScreen renders the running conversation and collects the
// candidate's answers. When the controller reports the session finished
// it hands off to the report screen.
type InterviewScreen struct {
	controller *iv.Controller
	session    *iv.Session

	candidateName string
	role          string
	finish        func(s *iv.Session) screen.Screen

	input    components.TextInput
	thinking bool
	errText  string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen for the given candidate. finish builds
// the report screen once the session reaches its terminal phase.
func New(controller *iv.Controller, name, role string, finish func(s *iv.Session) screen.Screen) *InterviewScreen {
	return &InterviewScreen{
		controller:    controller,
		candidateName: name,
		role:          role,
		finish:        finish,
		input:         components.NewTextInput("Type your answer...", 500),
	}
}

func (m *InterviewScreen) Title() string {
	return "Interview in Progress"
}

func (m *InterviewScreen) Init() tea.Cmd {
	m.thinking = true
	return tea.Batch(m.input.Init(), m.beginCmd())
}

func (m *InterviewScreen) KeyHints() []layout.KeyHint {
	if m.thinking {
		return []layout.KeyHint{
			{Key: "...", Description: "Interviewer is thinking"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m *InterviewScreen) beginCmd() tea.Cmd {
	return func() tea.Msg {
		s, _ := m.controller.Begin(context.Background(), m.candidateName, m.role)
		return beganMsg{session: s}
	}
}

func (m *InterviewScreen) respondCmd(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.controller.Respond(context.Background(), m.session, text)
		return repliedMsg{err: err}
	}
}

func (m *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case beganMsg:
		m.session = msg.session
		m.thinking = false
		return m, nil

	case repliedMsg:
		m.thinking = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		if m.controller.IsFinished(m.session) {
			next := m.finish(m.session)
			return m, func() tea.Msg {
				return router.SwitchScreenMsg{Screen: next}
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if m.thinking || m.session == nil {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.thinking = true
			m.errText = ""
			return m, m.respondCmd(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
