package layout

import (
	"math"

	"resume-builder/internal/model"
)

// modern has a full-width coloured header band with the name and title. The
// band grows when either of them wraps.
type modern struct{}

func (modern) ID() TemplateID { return TemplateModern }

func (modern) layout(c *canvas, data model.ResumeData) {
	p := data.PersonalInfo
	budget := c.page.Width - 2*Margin
	nameStyle := textStyle{size: 24, color: White}
	titleStyle := textStyle{size: 14, color: White}

	name := c.lines(p.FullName(), nameStyle, budget)
	title := c.lines(p.Title, titleStyle, budget)

	titleY := 25 + 10*math.Max(float64(len(name)), 1)
	last := titleY - 10
	if len(title) > 0 {
		last = titleY + 7*float64(len(title)-1)
	}
	band := math.Max(40, last+5)

	c.fill(0, 0, c.page.Width, band, Blue)
	c.emit(name, Margin, 25, nameStyle, 10)
	c.emit(title, Margin, titleY, titleStyle, 7)

	c.flow(column{x: Margin, width: budget}, band+15, data,
		sections(contentOptions{labelContact: true}),
		flowStyle{heading: textStyle{size: 16, bold: true, color: Black}, body: bodyStyle})
}
