package layout

import (
	"math"

	"resume-builder/internal/model"
)

// tech has a dark header bar and lists profile links compactly.
type tech struct{}

func (tech) ID() TemplateID { return TemplateTech }

func (tech) layout(c *canvas, data model.ResumeData) {
	p := data.PersonalInfo
	budget := c.page.Width - 2*Margin
	nameStyle := textStyle{size: 22, bold: true, color: White}
	titleStyle := textStyle{size: 12, color: Cyan}

	name := c.lines(p.FullName(), nameStyle, budget)
	title := c.lines(p.Title, titleStyle, budget)

	titleY := 16 + 9*math.Max(float64(len(name)), 1)
	last := titleY - 9
	if len(title) > 0 {
		last = titleY + 6*float64(len(title)-1)
	}
	bar := math.Max(32, last+7)

	c.fill(0, 0, c.page.Width, bar, Ink)
	c.emit(name, Margin, 16, nameStyle, 9)
	c.emit(title, Margin, titleY, titleStyle, 6)

	c.flow(column{x: Margin, width: budget}, bar+12, data,
		sections(contentOptions{labelContact: true, shortLinks: true}),
		flowStyle{heading: textStyle{size: 14, bold: true, color: Cyan}, body: bodyStyle})
}
