package formatters

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

const SuggestionsSystem = "You are a professional resume advisor. Provide specific, actionable suggestions to improve resumes for different career roles."

const suggestionListFormat = `[
    {
      "type": "skill|improvement|content",
      "title": "suggestion title",
      "description": "detailed suggestion",
      "priority": "low|medium|high"
    }
  ]`

func SuggestionsPrompt(data model.ResumeData, role string) string {
	return fmt.Sprintf("Analyze this resume data for a %s role and provide improvement suggestions.\nResume: %s\n\nRespond with JSON in this format:\n{\n  \"suggestions\": %s\n}",
		role, mustMarshal(data), suggestionListFormat)
}

// ParseSuggestions decodes the reply, dropping entries without a title and
// mapping unknown types and priorities onto the defaults.
func ParseSuggestions(content string) ([]model.AISuggestion, error) {
	var out struct {
		Suggestions []model.AISuggestion `json:"suggestions"`
	}
	if err := Decode(content, &out); err != nil {
		return nil, err
	}
	return SanitizeSuggestions(out.Suggestions), nil
}

func SanitizeSuggestions(in []model.AISuggestion) []model.AISuggestion {
	out := make([]model.AISuggestion, 0, len(in))
	for _, s := range in {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		s.Description = strings.TrimSpace(s.Description)
		switch t := strings.ToLower(strings.TrimSpace(s.Type)); t {
		case model.SuggestionSkill, model.SuggestionImprovement, model.SuggestionContent:
			s.Type = t
		default:
			s.Type = model.SuggestionImprovement
		}
		switch p := strings.ToLower(strings.TrimSpace(s.Priority)); p {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
			s.Priority = p
		default:
			s.Priority = model.PriorityMedium
		}
		out = append(out, s)
	}
	return out
}
