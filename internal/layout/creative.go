package layout

import (
	"math"

	"resume-builder/internal/model"
)

const sidebarWidth = 70.0

// creative puts the name in a full-height sidebar and the details in a
// column to its right.
type creative struct{}

func (creative) ID() TemplateID { return TemplateCreative }

func (creative) layout(c *canvas, data model.ResumeData) {
	p := data.PersonalInfo
	c.fill(0, 0, sidebarWidth, c.page.Height, Purple)

	budget := sidebarWidth - 20
	name := textStyle{size: 18, bold: true, color: White}
	// each sidebar block starts 15mm below the last line of the previous one
	block := func(s string, y float64, st textStyle, advance float64) float64 {
		end := c.wrapped(s, 10, y, budget, st, advance)
		return math.Max(end-advance, y) + 15
	}
	y := block(p.FirstName, 30, name, 8)
	y = block(p.LastName, y, name, 8)
	// the sidebar does not move the main column's cursor
	c.wrapped(p.Title, 10, y, budget, textStyle{size: 12, color: White}, LineAdvance)

	main := column{x: sidebarWidth + 10, width: c.page.Width - sidebarWidth - 30}
	c.flow(main, 30, data,
		sections(contentOptions{omit: []Section{SectionProjects, SectionSummary}}),
		flowStyle{heading: textStyle{size: 12, bold: true, color: Black}, body: bodyStyle})
}
