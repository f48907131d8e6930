package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/interviewlog"
	"github.com/abhisek/intervu/ent/schema"
)

// interviewRepo implements InterviewRepo backed by ent.
type interviewRepo struct {
	client *ent.Client
}

func (r *interviewRepo) Save(ctx context.Context, data InterviewLogData) error {
	profile := make(map[string]schema.SkillRecord, len(data.SkillProfile))
	for skill, rec := range data.SkillProfile {
		profile[skill] = schema.SkillRecord{
			Status:     rec.Status,
			Score:      rec.Score,
			Efficiency: rec.Efficiency,
			Evidence:   rec.Evidence,
		}
	}

	transcript := make([]schema.TranscriptEntry, len(data.Transcript))
	for i, e := range data.Transcript {
		transcript[i] = schema.TranscriptEntry{Role: e.Role, Content: e.Content}
	}

	_, err := r.client.InterviewLog.Create().
		SetSessionID(data.SessionID).
		SetCandidateName(data.CandidateName).
		SetInterviewRole(data.Role).
		SetSkillProfile(profile).
		SetReport(data.Report).
		SetTranscript(transcript).
		SetCreatedAt(data.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interview log: %w", err)
	}

	return nil
}

func (r *interviewRepo) List(ctx context.Context, limit int) ([]InterviewLogSummary, error) {
	q := r.client.InterviewLog.Query().
		Order(ent.Desc(interviewlog.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interview logs: %w", err)
	}

	out := make([]InterviewLogSummary, len(rows))
	for i, row := range rows {
		out[i] = InterviewLogSummary{
			ID:            row.ID,
			SessionID:     row.SessionID,
			CandidateName: row.CandidateName,
			Role:          row.InterviewRole,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}

func (r *interviewRepo) Get(ctx context.Context, id int) (*InterviewLogData, error) {
	row, err := r.client.InterviewLog.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get interview log %d: %w", id, err)
	}

	profile := make(map[string]SkillRecordData, len(row.SkillProfile))
	for skill, rec := range row.SkillProfile {
		profile[skill] = SkillRecordData{
			Status:     rec.Status,
			Score:      rec.Score,
			Efficiency: rec.Efficiency,
			Evidence:   rec.Evidence,
		}
	}

	transcript := make([]TranscriptEntryData, len(row.Transcript))
	for i, e := range row.Transcript {
		transcript[i] = TranscriptEntryData{Role: e.Role, Content: e.Content}
	}

	return &InterviewLogData{
		SessionID:     row.SessionID,
		CandidateName: row.CandidateName,
		Role:          row.InterviewRole,
		SkillProfile:  profile,
		Report:        row.Report,
		Transcript:    transcript,
		CreatedAt:     row.CreatedAt,
	}, nil
}
