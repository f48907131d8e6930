package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/intervu/internal/oracle"
)

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerCandidate Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Entry is one transcript message. The transcript is append-only and its
// insertion order is preserved verbatim in the persisted log.
type Entry struct {
	Speaker Speaker
	Text    string
}

// Session is the complete state of one candidate run. It is a plain value
// object owned by its caller and mutated exclusively by the Controller;
// there is no ambient session state anywhere.
type Session struct {
	ID            string
	CandidateName string

	// Role is the target role, set once at creation and opaque to the
	// controller.
	Role string

	Phase Phase

	// CaseStudy is generated once at interview start and is read-only
	// context for every technical question that follows.
	CaseStudy oracle.CaseStudy

	// CurrentSkill is the technical skill being tested. Empty outside
	// the technical phase.
	CurrentSkill Skill

	// CurrentQuestion is the question awaiting a candidate response.
	// Empty when no question is pending.
	CurrentQuestion string

	Profile    SkillProfile
	Transcript []Entry

	StartedAt time.Time
}

// NewSession creates a fresh session in the NotStarted phase.
func NewSession(candidateName, role string) *Session {
	return &Session{
		ID:            uuid.New().String(),
		CandidateName: candidateName,
		Role:          role,
		Phase:         PhaseNotStarted,
		Profile:       NewSkillProfile(),
		StartedAt:     time.Now(),
	}
}

// append adds entries to the transcript and returns them unchanged, so
// callers can surface just the new messages.
func (s *Session) append(entries ...Entry) []Entry {
	s.Transcript = append(s.Transcript, entries...)
	return entries
}
