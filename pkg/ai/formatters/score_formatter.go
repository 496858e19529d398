package formatters

import (
	"fmt"
	"math"
	"strings"

	"resume-builder/internal/model"
)

const ScoreSystem = "You are a professional resume scorer. Evaluate resumes objectively based on industry standards, completeness, and relevance to the target role."

func ScorePrompt(data model.ResumeData, role string) string {
	return fmt.Sprintf("Score this resume for a %s role on a scale of 1-10 and provide feedback.\nResume: %s\n\nRespond with JSON in this format:\n{\n  \"score\": 7,\n  \"feedback\": \"specific feedback about strengths and areas for improvement\",\n  \"suggestions\": %s\n}",
		role, mustMarshal(data), suggestionListFormat)
}

// ParseScore decodes the reply and clamps the score to 0..10.
func ParseScore(content string) (*model.ResumeScore, error) {
	var out model.ResumeScore
	if err := Decode(content, &out); err != nil {
		return nil, err
	}
	if math.IsNaN(out.Score) {
		out.Score = 0
	}
	out.Score = math.Max(0, math.Min(10, out.Score))
	out.Feedback = strings.TrimSpace(out.Feedback)
	out.Suggestions = SanitizeSuggestions(out.Suggestions)
	return &out, nil
}
