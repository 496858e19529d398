package formatters

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

const SkillsSystem = "You are a career advisor. Suggest relevant skills for different job roles based on current industry requirements."

var skillCategories = map[string]bool{"technical": true, "soft": true, "tool": true}

func SkillsPrompt(role string) string {
	return fmt.Sprintf("Suggest 10-15 relevant technical and soft skills for a %s role.\n\nRespond with JSON in this format:\n{\n  \"skills\": [\n    {\n      \"name\": \"skill name\",\n      \"category\": \"technical|soft|tool\"\n    }\n  ]\n}", role)
}

// ParseSkills decodes the reply, dropping blank and duplicate names.
// Unknown categories become "technical".
func ParseSkills(content string) ([]model.Skill, error) {
	var out struct {
		Skills []model.Skill `json:"skills"`
	}
	if err := Decode(content, &out); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	skills := make([]model.Skill, 0, len(out.Skills))
	for _, s := range out.Skills {
		s.Name = strings.TrimSpace(s.Name)
		key := strings.ToLower(s.Name)
		if s.Name == "" || seen[key] {
			continue
		}
		seen[key] = true
		s.Category = strings.ToLower(strings.TrimSpace(s.Category))
		if !skillCategories[s.Category] {
			s.Category = "technical"
		}
		skills = append(skills, s)
	}
	return skills, nil
}
