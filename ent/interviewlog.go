// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/interviewlog"
	"github.com/abhisek/intervu/ent/schema"
)

// InterviewLog is the model entity for the InterviewLog schema.
type InterviewLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the interview session
	SessionID string `json:"session_id,omitempty"`
	// CandidateName holds the value of the "candidate_name" field.
	CandidateName string `json:"candidate_name,omitempty"`
	// Target role the candidate interviewed for
	InterviewRole string `json:"interview_role,omitempty"`
	// Final per-skill evaluation records
	SkillProfile map[string]schema.SkillRecord `json:"skill_profile,omitempty"`
	// AI-generated performance report (markdown)
	Report string `json:"report,omitempty"`
	// Full conversation in insertion order
	Transcript []schema.TranscriptEntry `json:"transcript,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewlog.FieldSkillProfile, interviewlog.FieldTranscript:
			values[i] = new([]byte)
		case interviewlog.FieldID:
			values[i] = new(sql.NullInt64)
		case interviewlog.FieldSessionID, interviewlog.FieldCandidateName, interviewlog.FieldInterviewRole, interviewlog.FieldReport:
			values[i] = new(sql.NullString)
		case interviewlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewLog fields.
func (_m *InterviewLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewlog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewlog.FieldCandidateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_name", values[i])
			} else if value.Valid {
				_m.CandidateName = value.String
			}
		case interviewlog.FieldInterviewRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_role", values[i])
			} else if value.Valid {
				_m.InterviewRole = value.String
			}
		case interviewlog.FieldSkillProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillProfile); err != nil {
					return fmt.Errorf("unmarshal field skill_profile: %w", err)
				}
			}
		case interviewlog.FieldReport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value.Valid {
				_m.Report = value.String
			}
		case interviewlog.FieldTranscript:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transcript); err != nil {
					return fmt.Errorf("unmarshal field transcript: %w", err)
				}
			}
		case interviewlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewLog.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewLog.
// Note that you need to call InterviewLog.Unwrap() before calling this method if this InterviewLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewLog) Update() *InterviewLogUpdateOne {
	return NewInterviewLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewLog) Unwrap() *InterviewLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewLog) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("candidate_name=")
	builder.WriteString(_m.CandidateName)
	builder.WriteString(", ")
	builder.WriteString("interview_role=")
	builder.WriteString(_m.InterviewRole)
	builder.WriteString(", ")
	builder.WriteString("skill_profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillProfile))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(_m.Report)
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transcript))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewLogs is a parsable slice of InterviewLog.
type InterviewLogs []*InterviewLog
