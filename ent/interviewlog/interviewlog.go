// Code generated by ent, DO NOT EDIT.

package interviewlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewlog type in the database.
	Label = "interview_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCandidateName holds the string denoting the candidate_name field in the database.
	FieldCandidateName = "candidate_name"
	// FieldInterviewRole holds the string denoting the interview_role field in the database.
	FieldInterviewRole = "interview_role"
	// FieldSkillProfile holds the string denoting the skill_profile field in the database.
	FieldSkillProfile = "skill_profile"
	// FieldReport holds the string denoting the report field in the database.
	FieldReport = "report"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the interviewlog in the database.
	Table = "interview_logs"
)

// Columns holds all SQL columns for interviewlog fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCandidateName,
	FieldInterviewRole,
	FieldSkillProfile,
	FieldReport,
	FieldTranscript,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// CandidateNameValidator is a validator for the "candidate_name" field. It is called by the builders before save.
	CandidateNameValidator func(string) error
	// InterviewRoleValidator is a validator for the "interview_role" field. It is called by the builders before save.
	InterviewRoleValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the InterviewLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCandidateName orders the results by the candidate_name field.
func ByCandidateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateName, opts...).ToFunc()
}

// ByInterviewRole orders the results by the interview_role field.
func ByInterviewRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewRole, opts...).ToFunc()
}

// ByReport orders the results by the report field.
func ByReport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReport, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
