package model

// Suggestion kinds and priorities produced by the AI collaborator.
const (
	SuggestionSkill       = "skill"
	SuggestionImprovement = "improvement"
	SuggestionContent     = "content"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// AISuggestion is display-only. Nothing in this module merges a suggestion
// back into a ResumeData.
type AISuggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ResumeScore is a 0..10 rating with feedback, also display-only.
type ResumeScore struct {
	Score       float64        `json:"score"`
	Feedback    string         `json:"feedback"`
	Suggestions []AISuggestion `json:"suggestions"`
}

// Enhancement is a rewritten piece of resume text.
type Enhancement struct {
	Enhanced    string `json:"enhanced"`
	Explanation string `json:"explanation"`
}
