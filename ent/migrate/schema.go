// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InterviewLogsColumns holds the columns for the "interview_logs" table.
	InterviewLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "candidate_name", Type: field.TypeString},
		{Name: "interview_role", Type: field.TypeString},
		{Name: "skill_profile", Type: field.TypeJSON},
		{Name: "report", Type: field.TypeString, Size: 2147483647},
		{Name: "transcript", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InterviewLogsTable holds the schema information for the "interview_logs" table.
	InterviewLogsTable = &schema.Table{
		Name:       "interview_logs",
		Columns:    InterviewLogsColumns,
		PrimaryKey: []*schema.Column{InterviewLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewlog_candidate_name",
				Unique:  false,
				Columns: []*schema.Column{InterviewLogsColumns[2]},
			},
			{
				Name:    "interviewlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewLogsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InterviewLogsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
