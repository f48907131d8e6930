package oracle

import (
	"fmt"
	"strings"
)

const interviewerSystemPrompt = `You are an AI interviewer running a practical Excel screening for a job candidate.
Stay professional and encouraging. Ask one thing at a time. Never reveal scores or internal reasoning to the candidate.`

const evaluatorSystemPrompt = `You are an expert Senior Analyst evaluating a candidate's response in a technical screening.
Judge only what the candidate actually said. Be fair but rigorous.`

const hiringManagerSystemPrompt = `You are a Senior Hiring Manager producing formal candidate assessments.`

func buildCaseStudyMessage(role string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a realistic business case study to assess a candidate's Excel skills for a '%s' role.\n", role)
	b.WriteString("The case study needs a simple, text-based dataset with 3-4 columns and a few rows.\n")
	b.WriteString("The data should have some intentional messiness (e.g., extra spaces, inconsistent casing).")
	return b.String()
}

func buildQuestionMessage(cs CaseStudy, role, skill string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are guiding a candidate through a case study for a '%s' role.\n", role)
	fmt.Fprintf(&b, "Scenario: %q\n", cs.Scenario)
	fmt.Fprintf(&b, "Dataset: %q\n", cs.DatasetDescription)
	fmt.Fprintf(&b, "Your current goal is to assess their skill in: %s.\n", skill)
	b.WriteString("Formulate a single, clear question to test this skill using the case study context.\n")
	b.WriteString("Return ONLY the question text.")
	return b.String()
}

func buildIntentMessage(answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the candidate's response: %q\n", answer)
	b.WriteString("Determine the candidate's intent:\n")
	b.WriteString("- ANSWERING: directly trying to answer the question.\n")
	b.WriteString("- HINT_REQUEST: asking for a hint, help, or clarification.\n")
	b.WriteString("- UNCERTAIN: states they don't know the answer or are unsure.")
	return b.String()
}

func buildHintMessage(question string) string {
	return fmt.Sprintf(
		"The candidate is stuck on this question: %q\nProvide a brief, encouraging hint to guide them in the right direction without giving away the answer.",
		question,
	)
}

func buildEvaluationMessage(question, answer, skill string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The skill being tested is: %s.\n", skill)
	fmt.Fprintf(&b, "The question was: %q\n", question)
	fmt.Fprintf(&b, "The candidate's answer was: %q\n", answer)
	b.WriteString("Score the answer for correctness and for efficiency of approach, and write a short conversational reply to the candidate.")
	return b.String()
}

const behavioralQuestionMessage = `Ask one standard behavioral interview question, like 'Tell me about a challenging project' or 'Describe a time you made a mistake'. Return ONLY the question text.`

func buildBehavioralEvalMessage(question, answer string) string {
	var b strings.Builder
	b.WriteString("You are a hiring manager evaluating a candidate's response to a behavioral question.\n")
	fmt.Fprintf(&b, "The question was: %q\n", question)
	fmt.Fprintf(&b, "The answer was: %q\n", answer)
	b.WriteString("Evaluate the answer's structure and clarity (e.g., STAR method). Assign a score from 1 (unstructured) to 5 (clear and well-structured), with a brief justification.")
	return b.String()
}

func buildReportMessage(in ReportInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate Name: %s\nRole: %s\n", in.CandidateName, in.Role)
	fmt.Fprintf(&b, "Final Skill Profile:\n%s\n\n", string(in.ProfileJSON))
	b.WriteString("Write a formal, structured performance report in Markdown. The report must include:\n")
	b.WriteString("1. Overall Summary: a brief overview.\n")
	b.WriteString("2. Technical Strengths: skills scored 4 or 5. Mention efficiency if it was a highlight.\n")
	b.WriteString("3. Areas for Development: skills scored 3 or less. Be constructive.\n")
	b.WriteString("4. Behavioral Competency: comment on the structure and clarity of the behavioral answer.\n")
	b.WriteString("5. Final Recommendation: one of Strongly Recommend, Recommend, Recommend with Reservations, Do Not Recommend, with a one-sentence justification.")
	return b.String()
}
