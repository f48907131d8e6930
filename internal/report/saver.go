package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/store"
)

// Saver persists completed interview records: a JSON log file on disk
// and a row in the interview archive. Both writes are one-shot with no
// transactional guarantee; a failure is reported but the report text
// has already been handed to the caller.
type Saver struct {
	dir  string
	repo store.InterviewRepo
}

// NewSaver creates a Saver writing JSON logs under dir. repo may be nil,
// in which case only the file is written.
func NewSaver(dir string, repo store.InterviewRepo) *Saver {
	return &Saver{dir: dir, repo: repo}
}

// Save builds the record for a finished session and persists it.
// It returns the JSON file path and any persistence errors joined
// together; a non-nil error still means the record may be partially
// persisted.
func (sv *Saver) Save(ctx context.Context, s *interview.Session, reportText string) (string, error) {
	rec := Build(s, reportText, time.Now())

	var errs []error

	path, err := sv.writeFile(rec)
	if err != nil {
		errs = append(errs, fmt.Errorf("write log file: %w", err))
	}

	if sv.repo != nil {
		if err := sv.archive(ctx, s.ID, rec); err != nil {
			errs = append(errs, fmt.Errorf("archive interview: %w", err))
		}
	}

	return path, errors.Join(errs...)
}

// writeFile persists the record as pretty-printed JSON and returns the
// full path.
func (sv *Saver) writeFile(rec Record) (string, error) {
	if err := os.MkdirAll(sv.dir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(sv.dir, Filename(rec.CandidateName, rec.Timestamp))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// archive stores the record in the interview archive table.
func (sv *Saver) archive(ctx context.Context, sessionID string, rec Record) error {
	profile := make(map[string]store.SkillRecordData, len(rec.FinalSkillProfile))
	for skill, a := range rec.FinalSkillProfile {
		profile[string(skill)] = store.SkillRecordData{
			Status:     string(a.Status),
			Score:      a.Score,
			Efficiency: a.Efficiency,
			Evidence:   a.Evidence,
		}
	}

	transcript := make([]store.TranscriptEntryData, len(rec.FullTranscript))
	for i, e := range rec.FullTranscript {
		transcript[i] = store.TranscriptEntryData{Role: e.Role, Content: e.Content}
	}

	return sv.repo.Save(ctx, store.InterviewLogData{
		SessionID:     sessionID,
		CandidateName: rec.CandidateName,
		Role:          rec.InterviewRole,
		SkillProfile:  profile,
		Report:        rec.AIGeneratedReport,
		Transcript:    transcript,
		CreatedAt:     time.Unix(rec.Timestamp, 0),
	})
}
