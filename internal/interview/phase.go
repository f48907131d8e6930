package interview

// Phase is the interview's current macro-stage. Phases only ever move
// forward; no phase is revisited.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseCaseStudyIntro
	PhaseTechnical
	PhaseBehavioral
	PhaseReportReady
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseCaseStudyIntro:
		return "case-study-intro"
	case PhaseTechnical:
		return "technical"
	case PhaseBehavioral:
		return "behavioral"
	case PhaseReportReady:
		return "report-ready"
	}
	return "unknown"
}
