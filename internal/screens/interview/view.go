package interview

import (
	"strings"

	"charm.land/lipgloss/v2"

	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/ui/theme"
)

func (m *InterviewScreen) View(width, height int) string {
	var b strings.Builder

	inputHeight := 3
	chatHeight := height - inputHeight
	if chatHeight < 1 {
		chatHeight = 1
	}

	b.WriteString(m.renderTranscript(width, chatHeight))
	b.WriteString("\n")
	b.WriteString(m.renderInputArea(width))

	return b.String()
}

// renderTranscript renders the newest transcript entries that fit in
// the available height, oldest visible entry first.
func (m *InterviewScreen) renderTranscript(width, height int) string {
	if m.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing your case study...")
	}

	wrap := width - 6
	if wrap < 20 {
		wrap = 20
	}

	var lines []string
	for _, entry := range m.session.Transcript {
		lines = append(lines, m.renderEntry(entry, wrap)...)
		lines = append(lines, "")
	}
	if m.thinking {
		lines = append(lines, theme.Thinking.Render("  Interviewer is thinking..."))
	}
	if m.errText != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render("  "+m.errText))
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	return strings.Join(lines, "\n")
}

func (m *InterviewScreen) renderEntry(entry iv.Entry, wrap int) []string {
	label := theme.Interviewer.Render("  Interviewer")
	if entry.Speaker == iv.SpeakerCandidate {
		label = theme.Candidate.Bold(true).Render("  You")
	}

	body := lipgloss.NewStyle().
		Width(wrap).
		Foreground(theme.Text).
		Render(entry.Text)

	lines := []string{label}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, "    "+l)
	}
	return lines
}

func (m *InterviewScreen) renderInputArea(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")
	if m.thinking {
		b.WriteString(theme.Hint.Render("  Waiting for the interviewer..."))
	} else {
		b.WriteString("  " + m.input.View())
	}
	return b.String()
}
