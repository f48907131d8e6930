// Package report implements the final screen shown after an interview
// concludes. It asks the controller for the hiring-manager report,
// persists the session log, and displays both outcomes.
package report

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/report"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

type generatedMsg struct {
	text      string
	savedPath string
	saveErr   error
	err       error
}

// ReportScreen is terminal: there is no navigation out of it besides
// quitting the program.
type ReportScreen struct {
	controller *iv.Controller
	saver      *report.Saver
	session    *iv.Session

	generating bool
	text       string
	savedPath  string
	saveErr    error
	err        error
	scroll     int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

func New(controller *iv.Controller, saver *report.Saver, session *iv.Session) *ReportScreen {
	return &ReportScreen{
		controller: controller,
		saver:      saver,
		session:    session,
	}
}

func (r *ReportScreen) Title() string {
	return "Performance Report"
}

func (r *ReportScreen) Init() tea.Cmd {
	r.generating = true
	return r.generateCmd()
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ReportScreen) generateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		text, err := r.controller.Report(ctx, r.session)
		if err != nil {
			return generatedMsg{err: err}
		}

		var path string
		var saveErr error
		if r.saver != nil {
			path, saveErr = r.saver.Save(ctx, r.session, text)
		}
		return generatedMsg{text: text, savedPath: path, saveErr: saveErr}
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		r.generating = false
		r.text = msg.text
		r.savedPath = msg.savedPath
		r.saveErr = msg.saveErr
		r.err = msg.err
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.scroll > 0 {
				r.scroll--
			}
		case "down", "j":
			r.scroll++
		}
	}
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	if r.generating {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Compiling your performance report...")
	}

	if r.err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not produce a report: " + r.err.Error())
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Interview Performance Report"))
	b.WriteString("\n\n")

	wrap := width - 6
	if wrap < 20 {
		wrap = 20
	}
	body := lipgloss.NewStyle().Width(wrap).Foreground(theme.Text).Render(r.text)
	lines := strings.Split(body, "\n")

	footer := r.renderSaveStatus()
	bodyHeight := height - 4 - strings.Count(footer, "\n") - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if r.scroll > len(lines)-bodyHeight {
		r.scroll = len(lines) - bodyHeight
	}
	if r.scroll < 0 {
		r.scroll = 0
	}
	end := r.scroll + bodyHeight
	if end > len(lines) {
		end = len(lines)
	}
	for _, l := range lines[r.scroll:end] {
		b.WriteString("   " + l + "\n")
	}

	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

func (r *ReportScreen) renderSaveStatus() string {
	if r.saveErr != nil {
		return lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("   Warning: interview log was not saved: " + r.saveErr.Error())
	}
	if r.savedPath != "" {
		return theme.Hint.Render("   Interview log saved to " + r.savedPath)
	}
	return ""
}
