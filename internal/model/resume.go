package model

import "strings"

// Go models for the resume draft. JSON names match resume.schema.json and the
// persisted draft slot, so a draft written by one version loads in the next.

// PersonalInfo is replaced wholesale on edit; callers never patch single
// fields of the live draft.
type PersonalInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Title     string `json:"title"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	GitHub    string `json:"github" validate:"omitempty,url"`
}

// FullName is "First Last" with surrounding whitespace removed.
func (p PersonalInfo) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

type Education struct {
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Institution  string `json:"institution" validate:"required"`
	GPA          string `json:"gpa"`
	StartYear    *int   `json:"startYear,omitempty"`
	EndYear      *int   `json:"endYear,omitempty"`
}

type Skill struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

type Project struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link" validate:"omitempty,url"`
	GitHub       string   `json:"github" validate:"omitempty,url"`
}

// ResumeData is the aggregate root of a draft. No field is ever absent, only
// empty: slices are non-nil after Normalize.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
	Summary      string       `json:"summary"`
	SelectedRole string       `json:"selectedRole"`
}

// New returns the canonical all-empty draft.
func New() ResumeData {
	return ResumeData{
		Education: []Education{},
		Skills:    []Skill{},
		Projects:  []Project{},
	}
}

// Normalize replaces nil sequences with empty ones.
func (r ResumeData) Normalize() ResumeData {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
	return r
}

// Clone returns a deep copy that shares no slices or pointers with r.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Education = make([]Education, len(r.Education))
	for i, e := range r.Education {
		e.StartYear = cloneInt(e.StartYear)
		e.EndYear = cloneInt(e.EndYear)
		out.Education[i] = e
	}
	out.Skills = append([]Skill{}, r.Skills...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string{}, p.Technologies...)
		out.Projects[i] = p
	}
	return out
}

// SkillNames returns the non-blank skill names, trimmed, in display order.
func (r ResumeData) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if n := strings.TrimSpace(s.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// ParseTechnologies turns a comma-separated input into trimmed, non-empty
// tokens in input order.
func ParseTechnologies(csv string) []string {
	out := []string{}
	for _, tok := range strings.Split(csv, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Year is a small helper for building optional years.
func Year(y int) *int { return &y }

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
