package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPersonal() PersonalInfo {
	return PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Title: "Developer"}
}

func TestValidatePersonalInfo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *PersonalInfo)
		fields []string
	}{
		{name: "valid", mutate: func(p *PersonalInfo) {}},
		{name: "empty first name", mutate: func(p *PersonalInfo) { p.FirstName = "" }, fields: []string{"personalInfo.firstName"}},
		{name: "whitespace last name", mutate: func(p *PersonalInfo) { p.LastName = "   " }, fields: []string{"personalInfo.lastName"}},
		{name: "bad email", mutate: func(p *PersonalInfo) { p.Email = "not-an-email" }, fields: []string{"personalInfo.email"}},
		{name: "missing email", mutate: func(p *PersonalInfo) { p.Email = "" }, fields: []string{"personalInfo.email"}},
		{name: "empty optional urls", mutate: func(p *PersonalInfo) { p.LinkedIn, p.GitHub = "", "" }},
		{name: "valid urls", mutate: func(p *PersonalInfo) {
			p.LinkedIn = "https://linkedin.com/in/jane"
			p.GitHub = "https://github.com/jane"
		}},
		{name: "bad linkedin", mutate: func(p *PersonalInfo) { p.LinkedIn = "linkedin jane" }, fields: []string{"personalInfo.linkedin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPersonal()
			tt.mutate(&p)
			err := ValidatePersonalInfo(p)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			var ve ValidationErrors
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.fields, ve.Fields())
		})
	}
}

func TestValidateEducation(t *testing.T) {
	err := ValidateEducation(Education{})
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"education.degree", "education.institution"}, ve.Fields())

	// end before start is allowed
	assert.NoError(t, ValidateEducation(Education{Degree: "BSc", Institution: "X", StartYear: Year(2024), EndYear: Year(2020)}))
}

func TestValidateProject(t *testing.T) {
	assert.NoError(t, ValidateProject(Project{Title: "Site"}))
	assert.Error(t, ValidateProject(Project{Title: "Site", Link: "nope"}))
	assert.Error(t, ValidateProject(Project{Title: " "}))
}

func TestValidate_Aggregate(t *testing.T) {
	data := New()
	data.PersonalInfo = validPersonal()
	data.Skills = []Skill{{Name: "Go"}, {Name: ""}}
	data.Projects = []Project{{Title: "P", GitHub: "bad"}}

	_, err := Validate(data)
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"skills[1].name", "projects[0].github"}, ve.Fields())

	data.Skills = data.Skills[:1]
	data.Projects[0].GitHub = "https://github.com/jane/p"
	out, err := Validate(data)
	require.NoError(t, err)
	assert.Equal(t, []string{}, out.Projects[0].Technologies)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "personalInfo.email", Reason: "invalid email format"}
	assert.Equal(t, "validation error: personalInfo.email - invalid email format", err.Error())
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(`{"personalInfo":{"firstName":""},"education":[],"skills":[],"projects":[],"summary":"","selectedRole":""}`)))
	assert.NoError(t, ValidateDocument([]byte(`{"personalInfo":{},"education":[{"degree":"B","startYear":2020}]}`)))

	err := ValidateDocument([]byte(`{"personalInfo":{"firstName":3}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	assert.Error(t, ValidateDocument([]byte(`{"education":[]}`)))
	assert.Error(t, ValidateDocument([]byte(`{"personalInfo":{},"education":[{"startYear":"2020"}]}`)))
}
