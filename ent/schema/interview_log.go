package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewLog archives one completed interview session: the final skill
// profile, the generated report, and the full transcript.
type InterviewLog struct {
	ent.Schema
}

// SkillRecord is the serialized form of one skill's evaluation record.
type SkillRecord struct {
	Status     string `json:"status"`
	Score      int    `json:"score"`
	Efficiency int    `json:"efficiency,omitempty"`
	Evidence   string `json:"evidence"`
}

// TranscriptEntry is the serialized form of one transcript message.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (InterviewLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID of the interview session"),
		field.String("candidate_name").
			NotEmpty(),
		field.String("interview_role").
			NotEmpty().
			Comment("Target role the candidate interviewed for"),
		field.JSON("skill_profile", map[string]SkillRecord{}).
			Comment("Final per-skill evaluation records"),
		field.Text("report").
			Comment("AI-generated performance report (markdown)"),
		field.JSON("transcript", []TranscriptEntry{}).
			Comment("Full conversation in insertion order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (InterviewLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("candidate_name"),
		index.Fields("created_at"),
	}
}
