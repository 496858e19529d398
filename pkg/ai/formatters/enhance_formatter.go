package formatters

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

const EnhanceSystem = "You are a professional resume writer. Enhance resume content to be more impactful while maintaining accuracy and relevance."

// EnhancePrompt asks for a rewrite of text, which is a piece of the resume of
// the given kind (summary, project description, ...).
func EnhancePrompt(text, kind, role string) string {
	return fmt.Sprintf("Enhance this %s for a %s resume to be more professional and impactful:\n%q\n\nRespond with JSON in this format:\n{\n  \"enhanced\": \"improved version of the text\",\n  \"explanation\": \"brief explanation of improvements made\"\n}",
		kind, role, text)
}

func ParseEnhancement(content string) (*model.Enhancement, error) {
	var out model.Enhancement
	if err := Decode(content, &out); err != nil {
		return nil, err
	}
	out.Enhanced = strings.TrimSpace(out.Enhanced)
	if out.Enhanced == "" {
		return nil, fmt.Errorf("model returned no enhanced text")
	}
	out.Explanation = strings.TrimSpace(out.Explanation)
	return &out, nil
}
