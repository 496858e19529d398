package layout

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// Section names a block of the body in its fixed order.
type Section int

const (
	SectionContact Section = iota
	SectionEducation
	SectionSkills
	SectionProjects
	SectionSummary
)

var sectionTitles = map[Section]string{
	SectionContact:   "Contact",
	SectionEducation: "Education",
	SectionSkills:    "Skills",
	SectionProjects:  "Projects",
	SectionSummary:   "Summary",
}

func (s Section) String() string { return sectionTitles[s] }

type column struct {
	x, width float64
}

// paragraph is one logical body line before wrapping.
type paragraph struct {
	text     string
	bold     bool
	gapAfter float64
}

type flowStyle struct {
	heading       textStyle
	body          textStyle
	upperHeadings bool
	ruled         bool
	ruleColor     Color
}

// contentOptions select how sections phrase their content.
type contentOptions struct {
	labelContact bool
	shortLinks   bool
	omit         []Section
}

func (o contentOptions) omitted(s Section) bool {
	for _, x := range o.omit {
		if x == s {
			return true
		}
	}
	return false
}

type section struct {
	id      Section
	content func(model.ResumeData) []paragraph
}

// sections returns the body sections in their fixed order minus the omitted
// ones.
func sections(opts contentOptions) []section {
	all := []section{
		{SectionContact, func(d model.ResumeData) []paragraph { return contactParagraphs(d.PersonalInfo, opts) }},
		{SectionEducation, educationParagraphs},
		{SectionSkills, skillParagraphs},
		{SectionProjects, func(d model.ResumeData) []paragraph { return projectParagraphs(d.Projects, opts) }},
		{SectionSummary, summaryParagraphs},
	}
	out := all[:0]
	for _, s := range all {
		if !opts.omitted(s.id) {
			out = append(out, s)
		}
	}
	return out
}

// flow lays the sections out top to bottom in col starting at y and returns
// the final cursor. A section without content emits nothing and leaves the
// cursor where it was.
func (c *canvas) flow(col column, y float64, data model.ResumeData, secs []section, st flowStyle) float64 {
	for _, s := range secs {
		paras := s.content(data)
		if len(paras) == 0 {
			continue
		}

		title := s.id.String()
		if st.upperHeadings {
			title = strings.ToUpper(title)
		}
		c.text(title, col.x, y, st.heading)
		if st.ruled {
			c.rule(col.x, y+2, col.x+col.width, y+2, 0.3, st.ruleColor)
		}
		y += HeadingAdvance

		for _, p := range paras {
			body := st.body
			if p.bold {
				body.bold = true
			}
			y = c.wrapped(p.text, col.x, y, col.width, body, LineAdvance)
			y += p.gapAfter
		}
		y += SectionGap
	}
	return y
}

func nonEmpty(paras []paragraph) []paragraph {
	out := paras[:0]
	for _, p := range paras {
		if strings.TrimSpace(p.text) != "" {
			out = append(out, p)
		}
	}
	return out
}

func labelled(label, value string, on bool) string {
	if value == "" || !on {
		return value
	}
	return label + ": " + value
}

func contactParagraphs(p model.PersonalInfo, opts contentOptions) []paragraph {
	link := func(raw string) string {
		if opts.shortLinks {
			return linkLabel(raw)
		}
		return raw
	}
	return nonEmpty([]paragraph{
		{text: labelled("Email", strings.TrimSpace(p.Email), opts.labelContact)},
		{text: labelled("Phone", strings.TrimSpace(p.Phone), opts.labelContact)},
		{text: labelled("Location", strings.TrimSpace(p.Location), opts.labelContact)},
		{text: labelled("LinkedIn", link(strings.TrimSpace(p.LinkedIn)), opts.labelContact)},
		{text: labelled("GitHub", link(strings.TrimSpace(p.GitHub)), opts.labelContact)},
	})
}

// contactLine joins the non-empty contact fields with sep, for templates
// that show contact details in the header.
func contactLine(p model.PersonalInfo, sep string, shortLinks bool) string {
	var parts []string
	for _, v := range []string{p.Email, p.Phone, p.Location} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	for _, v := range []string{p.LinkedIn, p.GitHub} {
		if v = strings.TrimSpace(v); v != "" {
			if shortLinks {
				v = linkLabel(v)
			}
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func educationParagraphs(d model.ResumeData) []paragraph {
	var out []paragraph
	for i, e := range d.Education {
		entry := nonEmpty([]paragraph{
			{text: strings.TrimSpace(e.Degree + " " + e.FieldOfStudy), bold: true},
			{text: strings.TrimSpace(e.Institution)},
			{text: yearRange(e)},
			{text: labelled("GPA", strings.TrimSpace(e.GPA), true)},
		})
		if len(entry) == 0 {
			continue
		}
		if i < len(d.Education)-1 {
			entry[len(entry)-1].gapAfter = LineAdvance / 2
		}
		out = append(out, entry...)
	}
	return out
}

// yearRange is "start - end" when both years are known.
func yearRange(e model.Education) string {
	if e.StartYear == nil || e.EndYear == nil {
		return ""
	}
	return fmt.Sprintf("%d - %d", *e.StartYear, *e.EndYear)
}

func skillParagraphs(d model.ResumeData) []paragraph {
	return nonEmpty([]paragraph{{text: strings.Join(d.SkillNames(), ", ")}})
}

func projectParagraphs(projects []model.Project, opts contentOptions) []paragraph {
	link := func(raw string) string {
		if opts.shortLinks {
			return linkLabel(raw)
		}
		return raw
	}
	var out []paragraph
	for i, p := range projects {
		entry := nonEmpty([]paragraph{
			{text: strings.TrimSpace(p.Title), bold: true},
			{text: strings.TrimSpace(p.Description)},
			{text: labelled("Technologies", strings.Join(p.Technologies, ", "), true)},
			{text: labelled("Link", link(strings.TrimSpace(p.Link)), true)},
			{text: labelled("GitHub", link(strings.TrimSpace(p.GitHub)), true)},
		})
		if len(entry) == 0 {
			continue
		}
		if i < len(projects)-1 {
			entry[len(entry)-1].gapAfter = LineAdvance / 2
		}
		out = append(out, entry...)
	}
	return out
}

func summaryParagraphs(d model.ResumeData) []paragraph {
	return nonEmpty([]paragraph{{text: strings.TrimSpace(d.Summary)}})
}
