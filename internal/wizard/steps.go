package wizard

// Step is a position in the guided flow, starting at 1.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepEducation
	StepSkills
	StepProjects
	StepSummary
)

// TotalSteps is the number of steps in the flow.
const TotalSteps = 5

// StepInfo describes a step for the progress header.
type StepInfo struct {
	ID          Step   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var steps = [TotalSteps]StepInfo{
	{ID: StepPersonalInfo, Title: "Personal Info", Description: "Basic contact information"},
	{ID: StepEducation, Title: "Education", Description: "Educational background"},
	{ID: StepSkills, Title: "Skills", Description: "Technical and soft skills"},
	{ID: StepProjects, Title: "Projects", Description: "Portfolio and work samples"},
	{ID: StepSummary, Title: "Summary", Description: "Professional summary"},
}

// Steps lists every step in order.
func Steps() []StepInfo {
	out := make([]StepInfo, len(steps))
	copy(out, steps[:])
	return out
}

func (s Step) Valid() bool { return s >= StepPersonalInfo && s <= StepSummary }

func (s Step) Info() StepInfo {
	if !s.Valid() {
		return StepInfo{ID: s}
	}
	return steps[s-1]
}

func (s Step) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return steps[s-1].Title
}
