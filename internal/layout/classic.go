package layout

import (
	"strings"

	"resume-builder/internal/model"
)

// classic is a centred, colourless corporate layout.
type classic struct{}

func (classic) ID() TemplateID { return TemplateClassic }

func (classic) layout(c *canvas, data model.ResumeData) {
	p := data.PersonalInfo
	budget := c.page.Width - 2*Margin

	y := 25.0
	y = c.wrappedCentered(p.FullName(), y, budget, textStyle{size: 22, bold: true, color: Slate}, 8)
	if p.FullName() == "" {
		y += 8
	}
	if strings.TrimSpace(p.Title) != "" {
		y = c.wrappedCentered(p.Title, y, budget, textStyle{size: 12, color: Slate}, 7)
	}
	if contact := contactLine(p, " | ", false); contact != "" {
		y = c.wrappedCentered(contact, y, budget, textStyle{size: 9, color: Black}, LineAdvance-1)
	}
	c.rule(Margin, y, c.page.Width-Margin, y, 0.3, Slate)
	y += SectionGap

	c.flow(column{x: Margin, width: budget}, y, data,
		sections(contentOptions{omit: []Section{SectionContact}}),
		flowStyle{
			heading:       textStyle{size: 12, bold: true, color: Slate},
			body:          bodyStyle,
			upperHeadings: true,
			ruled:         true,
			ruleColor:     Slate,
		})
}
