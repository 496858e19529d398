package model

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ValidationError reports one failing field of a leaf schema.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Reason)
}

// ValidationErrors collects every failing field of one validation pass.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the failing field names in report order.
func (ve ValidationErrors) Fields() []string {
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		out = append(out, e.Field)
	}
	return out
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func leafValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report JSON names so messages line up with form fields
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidatePersonalInfo checks the Personal Info step schema.
func ValidatePersonalInfo(p PersonalInfo) error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	return validateLeaf("personalInfo", p)
}

// ValidateEducation checks the Education step schema. Start and end years are
// deliberately not ordered against each other.
func ValidateEducation(e Education) error {
	e.Degree = strings.TrimSpace(e.Degree)
	e.Institution = strings.TrimSpace(e.Institution)
	return validateLeaf("education", e)
}

func ValidateSkill(s Skill) error {
	s.Name = strings.TrimSpace(s.Name)
	return validateLeaf("skill", s)
}

func ValidateProject(p Project) error {
	p.Title = strings.TrimSpace(p.Title)
	return validateLeaf("project", p)
}

// Validate checks every leaf of candidate and returns the normalized aggregate.
func Validate(candidate ResumeData) (ResumeData, error) {
	var all ValidationErrors
	collect := func(prefix string, err error) {
		var ve ValidationErrors
		if errors.As(err, &ve) {
			for _, e := range ve {
				all = append(all, &ValidationError{Field: prefix + e.Field[strings.Index(e.Field, ".")+1:], Reason: e.Reason})
			}
		}
	}
	collect("personalInfo.", ValidatePersonalInfo(candidate.PersonalInfo))
	for i, e := range candidate.Education {
		collect(fmt.Sprintf("education[%d].", i), ValidateEducation(e))
	}
	for i, s := range candidate.Skills {
		collect(fmt.Sprintf("skills[%d].", i), ValidateSkill(s))
	}
	for i, p := range candidate.Projects {
		collect(fmt.Sprintf("projects[%d].", i), ValidateProject(p))
	}
	if len(all) > 0 {
		return ResumeData{}, all
	}
	return candidate.Normalize(), nil
}

func validateLeaf(schema string, v interface{}) error {
	err := leafValidator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: schema, Reason: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &ValidationError{
			Field:  schema + "." + fe.Field(),
			Reason: reasonFor(fe),
		})
	}
	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "url":
		return "must be a valid URL"
	default:
		return "failed " + fe.Tag()
	}
}

// ValidateDocument checks that raw is a JSON document shaped like a ResumeData
// (types and required keys only, not the per-step rules).
func ValidateDocument(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(bytes.TrimSpace(raw))

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
