package interview

// Skill identifies one assessed competency.
type Skill string

const (
	SkillDataCleaning      Skill = "Data Cleaning"
	SkillDataAnalysis      Skill = "Data Analysis"
	SkillDataSummarization Skill = "Data Summarization"
	SkillBehavioral        Skill = "Behavioral"
)

// TechnicalSkills is the fixed order in which technical skills are tested.
// The behavioral skill always comes last, after every technical skill has
// been visited.
var TechnicalSkills = []Skill{
	SkillDataCleaning,
	SkillDataAnalysis,
	SkillDataSummarization,
}

// AllSkills lists every assessed skill.
var AllSkills = []Skill{
	SkillDataCleaning,
	SkillDataAnalysis,
	SkillDataSummarization,
	SkillBehavioral,
}

// Roles the candidate can interview for. The controller treats the role
// as an opaque string; this set constrains the presentation layer only.
var Roles = []string{
	"Data Analytics",
	"Finance",
	"Operations",
}
