// Package report aggregates a finished interview session into a
// persisted record: a value snapshot of the skill profile, the generated
// report text, and the verbatim transcript.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/intervu/internal/interview"
)

// TranscriptEntry is one transcript message in the persisted record.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Record is the persisted log of one completed interview. Its skill
// profile is a value snapshot taken at build time; mutating the live
// session afterwards does not change an already-built Record.
type Record struct {
	CandidateName     string                                   `json:"candidate_name"`
	InterviewRole     string                                   `json:"interview_role"`
	FinalSkillProfile map[interview.Skill]interview.Assessment `json:"final_skill_profile"`
	AIGeneratedReport string                                   `json:"ai_generated_report"`
	FullTranscript    []TranscriptEntry                        `json:"full_transcript"`
	Timestamp         int64                                    `json:"timestamp"`
}

// Build captures the session into a Record at the given time.
func Build(s *interview.Session, reportText string, now time.Time) Record {
	transcript := make([]TranscriptEntry, len(s.Transcript))
	for i, e := range s.Transcript {
		transcript[i] = TranscriptEntry{
			Role:    string(e.Speaker),
			Content: e.Text,
		}
	}

	return Record{
		CandidateName:     s.CandidateName,
		InterviewRole:     s.Role,
		FinalSkillProfile: s.Profile.Snapshot(),
		AIGeneratedReport: reportText,
		FullTranscript:    transcript,
		Timestamp:         now.Unix(),
	}
}

// Filename derives the log file name from the candidate name and
// timestamp. Whitespace in the name is replaced so concurrent sessions
// for different candidates never collide.
func Filename(candidateName string, timestamp int64) string {
	name := strings.Join(strings.Fields(candidateName), "_")
	if name == "" {
		name = "candidate"
	}
	return fmt.Sprintf("interview_log_%s_%d.json", name, timestamp)
}
