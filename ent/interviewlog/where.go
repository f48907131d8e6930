// Code generated by ent, DO NOT EDIT.

package interviewlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldSessionID, v))
}

// CandidateName applies equality check predicate on the "candidate_name" field. It's identical to CandidateNameEQ.
func CandidateName(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldCandidateName, v))
}

// InterviewRole applies equality check predicate on the "interview_role" field. It's identical to InterviewRoleEQ.
func InterviewRole(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldInterviewRole, v))
}

// Report applies equality check predicate on the "report" field. It's identical to ReportEQ.
func Report(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldReport, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContainsFold(FieldSessionID, v))
}

// CandidateNameEQ applies the EQ predicate on the "candidate_name" field.
func CandidateNameEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateNameNEQ applies the NEQ predicate on the "candidate_name" field.
func CandidateNameNEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNEQ(FieldCandidateName, v))
}

// CandidateNameIn applies the In predicate on the "candidate_name" field.
func CandidateNameIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldIn(FieldCandidateName, vs...))
}

// CandidateNameNotIn applies the NotIn predicate on the "candidate_name" field.
func CandidateNameNotIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNotIn(FieldCandidateName, vs...))
}

// CandidateNameGT applies the GT predicate on the "candidate_name" field.
func CandidateNameGT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGT(FieldCandidateName, v))
}

// CandidateNameGTE applies the GTE predicate on the "candidate_name" field.
func CandidateNameGTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGTE(FieldCandidateName, v))
}

// CandidateNameLT applies the LT predicate on the "candidate_name" field.
func CandidateNameLT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLT(FieldCandidateName, v))
}

// CandidateNameLTE applies the LTE predicate on the "candidate_name" field.
func CandidateNameLTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLTE(FieldCandidateName, v))
}

// CandidateNameContains applies the Contains predicate on the "candidate_name" field.
func CandidateNameContains(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContains(FieldCandidateName, v))
}

// CandidateNameHasPrefix applies the HasPrefix predicate on the "candidate_name" field.
func CandidateNameHasPrefix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasPrefix(FieldCandidateName, v))
}

// CandidateNameHasSuffix applies the HasSuffix predicate on the "candidate_name" field.
func CandidateNameHasSuffix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasSuffix(FieldCandidateName, v))
}

// CandidateNameEqualFold applies the EqualFold predicate on the "candidate_name" field.
func CandidateNameEqualFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEqualFold(FieldCandidateName, v))
}

// CandidateNameContainsFold applies the ContainsFold predicate on the "candidate_name" field.
func CandidateNameContainsFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContainsFold(FieldCandidateName, v))
}

// InterviewRoleEQ applies the EQ predicate on the "interview_role" field.
func InterviewRoleEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldInterviewRole, v))
}

// InterviewRoleNEQ applies the NEQ predicate on the "interview_role" field.
func InterviewRoleNEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNEQ(FieldInterviewRole, v))
}

// InterviewRoleIn applies the In predicate on the "interview_role" field.
func InterviewRoleIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldIn(FieldInterviewRole, vs...))
}

// InterviewRoleNotIn applies the NotIn predicate on the "interview_role" field.
func InterviewRoleNotIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNotIn(FieldInterviewRole, vs...))
}

// InterviewRoleGT applies the GT predicate on the "interview_role" field.
func InterviewRoleGT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGT(FieldInterviewRole, v))
}

// InterviewRoleGTE applies the GTE predicate on the "interview_role" field.
func InterviewRoleGTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGTE(FieldInterviewRole, v))
}

// InterviewRoleLT applies the LT predicate on the "interview_role" field.
func InterviewRoleLT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLT(FieldInterviewRole, v))
}

// InterviewRoleLTE applies the LTE predicate on the "interview_role" field.
func InterviewRoleLTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLTE(FieldInterviewRole, v))
}

// InterviewRoleContains applies the Contains predicate on the "interview_role" field.
func InterviewRoleContains(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContains(FieldInterviewRole, v))
}

// InterviewRoleHasPrefix applies the HasPrefix predicate on the "interview_role" field.
func InterviewRoleHasPrefix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasPrefix(FieldInterviewRole, v))
}

// InterviewRoleHasSuffix applies the HasSuffix predicate on the "interview_role" field.
func InterviewRoleHasSuffix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasSuffix(FieldInterviewRole, v))
}

// InterviewRoleEqualFold applies the EqualFold predicate on the "interview_role" field.
func InterviewRoleEqualFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEqualFold(FieldInterviewRole, v))
}

// InterviewRoleContainsFold applies the ContainsFold predicate on the "interview_role" field.
func InterviewRoleContainsFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContainsFold(FieldInterviewRole, v))
}

// ReportEQ applies the EQ predicate on the "report" field.
func ReportEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldReport, v))
}

// ReportNEQ applies the NEQ predicate on the "report" field.
func ReportNEQ(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNEQ(FieldReport, v))
}

// ReportIn applies the In predicate on the "report" field.
func ReportIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldIn(FieldReport, vs...))
}

// ReportNotIn applies the NotIn predicate on the "report" field.
func ReportNotIn(vs ...string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNotIn(FieldReport, vs...))
}

// ReportGT applies the GT predicate on the "report" field.
func ReportGT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGT(FieldReport, v))
}

// ReportGTE applies the GTE predicate on the "report" field.
func ReportGTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGTE(FieldReport, v))
}

// ReportLT applies the LT predicate on the "report" field.
func ReportLT(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLT(FieldReport, v))
}

// ReportLTE applies the LTE predicate on the "report" field.
func ReportLTE(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLTE(FieldReport, v))
}

// ReportContains applies the Contains predicate on the "report" field.
func ReportContains(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContains(FieldReport, v))
}

// ReportHasPrefix applies the HasPrefix predicate on the "report" field.
func ReportHasPrefix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasPrefix(FieldReport, v))
}

// ReportHasSuffix applies the HasSuffix predicate on the "report" field.
func ReportHasSuffix(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldHasSuffix(FieldReport, v))
}

// ReportEqualFold applies the EqualFold predicate on the "report" field.
func ReportEqualFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEqualFold(FieldReport, v))
}

// ReportContainsFold applies the ContainsFold predicate on the "report" field.
func ReportContainsFold(v string) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldContainsFold(FieldReport, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InterviewLog {
	return predicate.InterviewLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewLog) predicate.InterviewLog {
	return predicate.InterviewLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewLog) predicate.InterviewLog {
	return predicate.InterviewLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewLog) predicate.InterviewLog {
	return predicate.InterviewLog(sql.NotPredicates(p))
}
