package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/store"
)

func finishedSession(t *testing.T) *interview.Session {
	t.Helper()

	s := interview.NewSession("Ada Lovelace", "Data Analytics")
	s.Phase = interview.PhaseReportReady

	scores := map[interview.Skill][2]int{
		interview.SkillDataCleaning:      {5, 4},
		interview.SkillDataAnalysis:      {3, 5},
		interview.SkillDataSummarization: {2, 1},
	}
	for skill, sc := range scores {
		require.NoError(t, s.Profile.RecordResult(skill, sc[0], sc[1], "evidence for "+string(skill)))
	}
	require.NoError(t, s.Profile.RecordResult(interview.SkillBehavioral, 4, 0, "behavioral evidence"))

	return s
}

func TestBuildSnapshotsProfile(t *testing.T) {
	s := finishedSession(t)
	rec := Build(s, "report text", time.Unix(1700000000, 0))

	assert.Equal(t, "Ada Lovelace", rec.CandidateName)
	assert.Equal(t, "Data Analytics", rec.InterviewRole)
	assert.Equal(t, "report text", rec.AIGeneratedReport)
	assert.Equal(t, int64(1700000000), rec.Timestamp)

	want := map[interview.Skill][2]int{
		interview.SkillDataCleaning:      {5, 4},
		interview.SkillDataAnalysis:      {3, 5},
		interview.SkillDataSummarization: {2, 1},
	}
	for skill, sc := range want {
		a := rec.FinalSkillProfile[skill]
		assert.Equal(t, interview.StatusAssessed, a.Status, skill)
		assert.Equal(t, sc[0], a.Score, skill)
		assert.Equal(t, sc[1], a.Efficiency, skill)
	}

	// Mutating the live session must not change the built record.
	s.Profile[interview.SkillDataCleaning].Score = 1
	assert.Equal(t, 5, rec.FinalSkillProfile[interview.SkillDataCleaning].Score)
}

func TestBuildPreservesTranscriptOrder(t *testing.T) {
	s := finishedSession(t)
	s.Transcript = []interview.Entry{
		{Speaker: interview.SpeakerAssistant, Text: "Hello!"},
		{Speaker: interview.SpeakerCandidate, Text: "Hi."},
		{Speaker: interview.SpeakerAssistant, Text: "First question."},
	}

	rec := Build(s, "r", time.Now())

	require.Len(t, rec.FullTranscript, 3)
	assert.Equal(t, "assistant", rec.FullTranscript[0].Role)
	assert.Equal(t, "user", rec.FullTranscript[1].Role)
	assert.Equal(t, "First question.", rec.FullTranscript[2].Content)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "interview_log_Ada_Lovelace_1700000000.json", Filename("Ada Lovelace", 1700000000))
	assert.Equal(t, "interview_log_Bob_42.json", Filename("  Bob  ", 42))
	assert.Equal(t, "interview_log_candidate_42.json", Filename("   ", 42))
}

// memInterviewRepo implements store.InterviewRepo for testing.
type memInterviewRepo struct {
	saved []store.InterviewLogData
}

func (m *memInterviewRepo) Save(_ context.Context, data store.InterviewLogData) error {
	m.saved = append(m.saved, data)
	return nil
}

func (m *memInterviewRepo) List(_ context.Context, _ int) ([]store.InterviewLogSummary, error) {
	return nil, nil
}

func (m *memInterviewRepo) Get(_ context.Context, _ int) (*store.InterviewLogData, error) {
	return nil, nil
}

func TestSaverWritesFileAndArchives(t *testing.T) {
	dir := t.TempDir()
	repo := &memInterviewRepo{}
	sv := NewSaver(dir, repo)

	s := finishedSession(t)
	path, err := sv.Save(context.Background(), s, "final report")
	require.NoError(t, err)

	// The JSON file round-trips with the documented field names.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"candidate_name", "interview_role", "final_skill_profile",
		"ai_generated_report", "full_transcript", "timestamp",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.True(t, strings.HasPrefix(filepath.Base(path), "interview_log_Ada_Lovelace_"))

	// The archive row carries the same profile.
	require.Len(t, repo.saved, 1)
	row := repo.saved[0]
	assert.Equal(t, s.ID, row.SessionID)
	assert.Equal(t, "final report", row.Report)
	assert.Equal(t, 5, row.SkillProfile["Data Cleaning"].Score)
}

func TestSaverWithoutRepoWritesFileOnly(t *testing.T) {
	dir := t.TempDir()
	sv := NewSaver(dir, nil)

	path, err := sv.Save(context.Background(), finishedSession(t), "r")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaverReportsWriteFailure(t *testing.T) {
	// A file in place of the target directory forces MkdirAll to fail.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	sv := NewSaver(blocked, nil)
	_, err := sv.Save(context.Background(), finishedSession(t), "r")
	assert.Error(t, err)
}
