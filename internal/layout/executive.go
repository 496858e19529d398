package layout

import (
	"math"

	"resume-builder/internal/model"
)

// executive uses an accent strip, a ruled header and ruled uppercase
// headings.
type executive struct{}

func (executive) ID() TemplateID { return TemplateExecutive }

func (executive) layout(c *canvas, data model.ResumeData) {
	p := data.PersonalInfo
	budget := c.page.Width - 2*Margin

	c.fill(0, 0, c.page.Width, 4, Amber)
	y := c.wrapped(p.FullName(), Margin, 24, budget, textStyle{size: 22, bold: true, color: Ink}, 8)
	y = math.Max(y, 32)
	y = c.wrapped(p.Title, Margin, y, budget, textStyle{size: 12, color: Amber}, 6)
	ruleY := math.Max(37, y-1)
	c.rule(Margin, ruleY, c.page.Width-Margin, ruleY, 0.8, Amber)

	y = ruleY + 8
	if contact := contactLine(p, "  |  ", true); contact != "" {
		y = c.wrapped(contact, Margin, y, budget, textStyle{size: 9, color: Slate}, LineAdvance-1)
		y += SectionGap - LineAdvance + 1
	}

	c.flow(column{x: Margin, width: budget}, y, data,
		sections(contentOptions{shortLinks: true, omit: []Section{SectionContact}}),
		flowStyle{
			heading:       textStyle{size: 12, bold: true, color: Amber},
			body:          textStyle{size: 10, color: Ink},
			upperHeadings: true,
			ruled:         true,
			ruleColor:     LightGray,
		})
}
