package layout

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// TemplateID names a layout strategy.
type TemplateID string

const (
	TemplateModern    TemplateID = "modern"
	TemplateMinimal   TemplateID = "minimal"
	TemplateCreative  TemplateID = "creative"
	TemplateExecutive TemplateID = "executive"
	TemplateTech      TemplateID = "tech"
	TemplateClassic   TemplateID = "classic"
)

// UnknownTemplateError is returned for an id no template is registered for.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.ID)
}

// ParseTemplateID accepts a known id, ignoring case and surrounding spaces.
func ParseTemplateID(s string) (TemplateID, error) {
	id := TemplateID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[id]; !ok {
		return "", &UnknownTemplateError{ID: s}
	}
	return id, nil
}

// strategy lays one resume out on the canvas. Each template id has one.
type strategy interface {
	ID() TemplateID
	layout(c *canvas, data model.ResumeData)
}

var registry = map[TemplateID]strategy{
	TemplateModern:    modern{},
	TemplateMinimal:   minimal{},
	TemplateCreative:  creative{},
	TemplateExecutive: executive{},
	TemplateTech:      tech{},
	TemplateClassic:   classic{},
}

// TemplateInfo is the picker metadata of a template.
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Color       string     `json:"color"`
	Rating      int        `json:"rating"`
	Features    []string   `json:"features"`
}

var catalog = []TemplateInfo{
	{
		ID: TemplateModern, Name: "Modern Professional",
		Description: "Clean layout with header highlight perfect for tech roles",
		Category:    "Most Popular", Color: "blue", Rating: 5,
		Features: []string{"ATS-friendly", "Clean typography", "Skills showcase"},
	},
	{
		ID: TemplateMinimal, Name: "Minimalist Elite",
		Description: "Ultra-clean design for maximum impact and readability",
		Category:    "Clean", Color: "emerald", Rating: 5,
		Features: []string{"Minimalist design", "High readability", "Space efficient"},
	},
	{
		ID: TemplateCreative, Name: "Creative Portfolio",
		Description: "Eye-catching side layout for design professionals",
		Category:    "Design Roles", Color: "purple", Rating: 5,
		Features: []string{"Visual appeal", "Portfolio section", "Creative freedom"},
	},
	{
		ID: TemplateExecutive, Name: "Executive Premium",
		Description: "Sophisticated layout for senior leadership positions",
		Category:    "Leadership", Color: "amber", Rating: 5,
		Features: []string{"Leadership focus", "Achievement highlights", "Premium feel"},
	},
	{
		ID: TemplateTech, Name: "Tech Innovator",
		Description: "Modern tech-focused design with project highlights",
		Category:    "Technology", Color: "cyan", Rating: 5,
		Features: []string{"Tech-optimized", "Project showcase", "GitHub integration"},
	},
	{
		ID: TemplateClassic, Name: "Classic Executive",
		Description: "Traditional format ideal for corporate positions",
		Category:    "Corporate", Color: "slate", Rating: 4,
		Features: []string{"Professional layout", "Corporate style", "Experience focused"},
	},
}

// Catalog lists every template in picker order.
func Catalog() []TemplateInfo {
	out := make([]TemplateInfo, len(catalog))
	for i, t := range catalog {
		t.Features = append([]string(nil), t.Features...)
		out[i] = t
	}
	return out
}
