package model

// Role is an entry of the role picker shown before the wizard starts.
type Role struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

var roles = []Role{
	{ID: "developer", Title: "Software Developer", Description: "Backend, Frontend, Full-stack development roles", Skills: []string{"JavaScript", "Python", "React"}},
	{ID: "analyst", Title: "Data Analyst", Description: "Business intelligence, data science, analytics", Skills: []string{"SQL", "Excel", "Tableau"}},
	{ID: "marketing", Title: "Marketing", Description: "Digital marketing, content, social media", Skills: []string{"SEO", "Analytics", "Content"}},
	{ID: "design", Title: "UI/UX Designer", Description: "User experience, interface design, product design", Skills: []string{"Figma", "Sketch", "Adobe XD"}},
	{ID: "business", Title: "Business Analyst", Description: "Process improvement, requirements analysis", Skills: []string{"JIRA", "Confluence", "SQL"}},
	{ID: "hr", Title: "Human Resources", Description: "Recruitment, employee relations, training", Skills: []string{"Recruiting", "HRIS", "Training"}},
}

// Roles returns a copy of the role catalog in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	for i, r := range roles {
		r.Skills = append([]string{}, r.Skills...)
		out[i] = r
	}
	return out
}

// LookupRole finds a role by id.
func LookupRole(id string) (Role, bool) {
	for _, r := range Roles() {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}
