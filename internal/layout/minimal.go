package layout

import (
	"strings"

	"resume-builder/internal/model"
)

// minimal centres the header over a thin rule and keeps the body plain.
type minimal struct{}

func (minimal) ID() TemplateID { return TemplateMinimal }

func (minimal) layout(c *canvas, data model.ResumeData) {
	p := data.PersonalInfo
	budget := c.page.Width - 2*Margin

	y := 30.0
	y = c.wrappedCentered(p.FullName(), y, budget, textStyle{size: 24, bold: true, color: Black}, 10)
	if p.FullName() == "" {
		y += 10
	}
	if strings.TrimSpace(p.Title) != "" {
		y = c.wrappedCentered(p.Title, y, budget, textStyle{size: 14, color: Black}, 7)
		y += 8
	}

	c.rule(Margin, y, c.page.Width-Margin, y, 0.5, Black)
	y += 15

	if contact := contactLine(p, " • ", false); contact != "" {
		y = c.wrappedCentered(contact, y, budget, bodyStyle, LineAdvance)
		y += 20 - LineAdvance
	}

	c.flow(column{x: Margin, width: budget}, y, data,
		sections(contentOptions{omit: []Section{SectionContact}}),
		flowStyle{heading: textStyle{size: 16, bold: true, color: Black}, body: bodyStyle})
}
