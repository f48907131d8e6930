package interview

import (
	"strings"
	"testing"
)

func TestNewSkillProfileAllUntested(t *testing.T) {
	p := NewSkillProfile()

	if len(p) != len(AllSkills) {
		t.Fatalf("profile has %d skills, want %d", len(p), len(AllSkills))
	}
	for _, s := range AllSkills {
		a, ok := p[s]
		if !ok {
			t.Fatalf("skill %q missing from profile", s)
		}
		if a.Status != StatusUntested {
			t.Errorf("skill %q status = %s, want %s", s, a.Status, StatusUntested)
		}
	}
}

func TestRecordResult(t *testing.T) {
	p := NewSkillProfile()

	err := p.RecordResult(SkillDataCleaning, 4, 3, "Q: q\nA: a\nEval: good")
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	a := p[SkillDataCleaning]
	if a.Status != StatusAssessed {
		t.Errorf("status = %s, want %s", a.Status, StatusAssessed)
	}
	if a.Score != 4 || a.Efficiency != 3 {
		t.Errorf("score/efficiency = %d/%d, want 4/3", a.Score, a.Efficiency)
	}
	if !strings.Contains(a.Evidence, "Eval: good") {
		t.Errorf("evidence %q missing justification", a.Evidence)
	}
}

func TestRecordResultRejectsRevisit(t *testing.T) {
	p := NewSkillProfile()

	if err := p.RecordResult(SkillDataAnalysis, 5, 5, "e"); err != nil {
		t.Fatalf("first RecordResult: %v", err)
	}
	if err := p.RecordResult(SkillDataAnalysis, 1, 1, "e2"); err == nil {
		t.Fatal("second RecordResult on same skill should fail")
	}

	// The first record survives intact.
	if p[SkillDataAnalysis].Score != 5 {
		t.Errorf("score = %d, want 5 (unchanged)", p[SkillDataAnalysis].Score)
	}
}

func TestMarkSkippedRejectsRevisit(t *testing.T) {
	p := NewSkillProfile()

	if err := p.MarkSkipped(SkillDataCleaning); err != nil {
		t.Fatalf("MarkSkipped: %v", err)
	}
	if p[SkillDataCleaning].Status != StatusSkipped {
		t.Errorf("status = %s, want %s", p[SkillDataCleaning].Status, StatusSkipped)
	}

	if err := p.MarkSkipped(SkillDataCleaning); err == nil {
		t.Error("skipping an already-skipped skill should fail")
	}
	if err := p.RecordResult(SkillDataCleaning, 3, 3, "e"); err == nil {
		t.Error("assessing a skipped skill should fail")
	}
}

func TestUnknownSkillRejected(t *testing.T) {
	p := NewSkillProfile()

	if err := p.RecordResult(Skill("Juggling"), 5, 5, "e"); err == nil {
		t.Error("RecordResult on unknown skill should fail")
	}
	if err := p.MarkSkipped(Skill("Juggling")); err == nil {
		t.Error("MarkSkipped on unknown skill should fail")
	}
}

func TestNextUntestedFollowsOrder(t *testing.T) {
	p := NewSkillProfile()

	next, ok := p.NextUntested(TechnicalSkills)
	if !ok || next != SkillDataCleaning {
		t.Fatalf("next = %q, want %q", next, SkillDataCleaning)
	}

	if err := p.MarkSkipped(SkillDataCleaning); err != nil {
		t.Fatal(err)
	}
	next, ok = p.NextUntested(TechnicalSkills)
	if !ok || next != SkillDataAnalysis {
		t.Fatalf("next = %q, want %q", next, SkillDataAnalysis)
	}

	if err := p.RecordResult(SkillDataAnalysis, 3, 2, "e"); err != nil {
		t.Fatal(err)
	}
	if err := p.RecordResult(SkillDataSummarization, 4, 4, "e"); err != nil {
		t.Fatal(err)
	}

	if _, ok := p.NextUntested(TechnicalSkills); ok {
		t.Error("no technical skill should remain untested")
	}
	if p.IsComplete(AllSkills) {
		t.Error("behavioral skill is still untested, profile should not be complete")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	p := NewSkillProfile()
	if err := p.RecordResult(SkillDataCleaning, 5, 4, "before"); err != nil {
		t.Fatal(err)
	}

	snap := p.Snapshot()

	// Mutate the live profile after snapshotting.
	if err := p.MarkSkipped(SkillDataAnalysis); err != nil {
		t.Fatal(err)
	}
	p[SkillDataCleaning].Score = 1

	if snap[SkillDataCleaning].Score != 5 {
		t.Errorf("snapshot score = %d, want 5", snap[SkillDataCleaning].Score)
	}
	if snap[SkillDataAnalysis].Status != StatusUntested {
		t.Errorf("snapshot status = %s, want %s", snap[SkillDataAnalysis].Status, StatusUntested)
	}
}
