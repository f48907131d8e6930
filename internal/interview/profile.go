package interview

import "fmt"

// SkillStatus tracks whether a skill has been evaluated yet.
// Transitions are monotonic: Untested → Assessed or Untested → Skipped,
// never back.
type SkillStatus string

const (
	StatusUntested SkillStatus = "Untested"
	StatusAssessed SkillStatus = "Assessed"
	StatusSkipped  SkillStatus = "Skipped"
)

// Assessment is the evaluation record kept per skill.
type Assessment struct {
	Status SkillStatus `json:"status"`

	// Score is the correctness score, 1-5. 0 = not yet set.
	Score int `json:"score"`

	// Efficiency is the approach-efficiency score, 1-5. 0 = not yet set.
	// Only meaningful for technical skills.
	Efficiency int `json:"efficiency,omitempty"`

	// Evidence captures the question, the candidate's literal answer,
	// and the evaluator's justification. Empty until Assessed.
	Evidence string `json:"evidence"`
}

// SkillProfile maps each assessed skill to its evaluation record.
// It is the single source of truth for "has this skill been tested".
type SkillProfile map[Skill]*Assessment

// NewSkillProfile creates a profile with every skill Untested.
func NewSkillProfile() SkillProfile {
	p := make(SkillProfile, len(AllSkills))
	for _, s := range AllSkills {
		p[s] = &Assessment{Status: StatusUntested}
	}
	return p
}

// RecordResult marks a skill Assessed with its scores and evidence.
// The skill must currently be Untested; anything else is a controller
// bug, reported as an error so tests fail loudly.
func (p SkillProfile) RecordResult(skill Skill, score, efficiency int, evidence string) error {
	a, ok := p[skill]
	if !ok {
		return fmt.Errorf("record result: unknown skill %q", skill)
	}
	if a.Status != StatusUntested {
		return fmt.Errorf("record result: skill %q already %s", skill, a.Status)
	}

	a.Status = StatusAssessed
	a.Score = score
	a.Efficiency = efficiency
	a.Evidence = evidence
	return nil
}

// MarkSkipped marks an Untested skill as Skipped. Calling it on a skill
// that has already been visited is a controller bug.
func (p SkillProfile) MarkSkipped(skill Skill) error {
	a, ok := p[skill]
	if !ok {
		return fmt.Errorf("mark skipped: unknown skill %q", skill)
	}
	if a.Status != StatusUntested {
		return fmt.Errorf("mark skipped: skill %q already %s", skill, a.Status)
	}

	a.Status = StatusSkipped
	return nil
}

// NextUntested returns the first skill in the given order whose status is
// Untested. Pure query, no side effect.
func (p SkillProfile) NextUntested(order []Skill) (Skill, bool) {
	for _, s := range order {
		if a, ok := p[s]; ok && a.Status == StatusUntested {
			return s, true
		}
	}
	return "", false
}

// IsComplete reports whether no skill in the list is still Untested.
func (p SkillProfile) IsComplete(order []Skill) bool {
	_, found := p.NextUntested(order)
	return !found
}

// Snapshot returns a value copy of the profile. Mutating the live profile
// afterwards does not affect the snapshot.
func (p SkillProfile) Snapshot() map[Skill]Assessment {
	snap := make(map[Skill]Assessment, len(p))
	for s, a := range p {
		snap[s] = *a
	}
	return snap
}
