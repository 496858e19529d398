package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsFullyConstructed(t *testing.T) {
	b, err := json.Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"personalInfo":{"firstName":"","lastName":"","title":"","email":"","phone":"","location":"","linkedin":"","github":""},
		"education":[],"skills":[],"projects":[],"summary":"","selectedRole":""
	}`, string(b))
}

func TestNormalize(t *testing.T) {
	r := ResumeData{Projects: []Project{{Title: "x"}}}.Normalize()
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.Skills)
	assert.Equal(t, []string{}, r.Projects[0].Technologies)
}

func TestClone_IsDeep(t *testing.T) {
	orig := New()
	orig.Education = []Education{{Degree: "BSc", StartYear: Year(2020)}}
	orig.Skills = []Skill{{Name: "Go"}}
	orig.Projects = []Project{{Title: "P", Technologies: []string{"Go"}}}

	c := orig.Clone()
	*c.Education[0].StartYear = 1999
	c.Skills[0].Name = "Rust"
	c.Projects[0].Technologies[0] = "Zig"

	assert.Equal(t, 2020, *orig.Education[0].StartYear)
	assert.Equal(t, "Go", orig.Skills[0].Name)
	assert.Equal(t, "Go", orig.Projects[0].Technologies[0])
}

func TestParseTechnologies(t *testing.T) {
	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, ParseTechnologies(" Go, Postgres ,,Redis , "))
	assert.Equal(t, []string{}, ParseTechnologies(""))
	assert.Equal(t, []string{}, ParseTechnologies(" , "))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", PersonalInfo{FirstName: " Jane", LastName: "Doe "}.FullName())
	assert.Equal(t, "Doe", PersonalInfo{LastName: "Doe"}.FullName())
}

func TestRoles(t *testing.T) {
	r, ok := LookupRole("analyst")
	require.True(t, ok)
	assert.Equal(t, "Data Analyst", r.Title)

	r.Skills[0] = "mutated"
	again, _ := LookupRole("analyst")
	assert.Equal(t, "SQL", again.Skills[0])

	_, ok = LookupRole("astronaut")
	assert.False(t, ok)
	assert.Len(t, Roles(), 6)
}

func TestSkillNames(t *testing.T) {
	r := New()
	r.Skills = []Skill{{Name: " Go "}, {Name: "  "}, {Name: "SQL"}}
	assert.Equal(t, []string{"Go", "SQL"}, r.SkillNames())
	assert.Equal(t, []string{}, New().SkillNames())
}
