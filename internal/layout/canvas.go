package layout

import "strings"

type textStyle struct {
	size  float64
	bold  bool
	color Color
}

var (
	bodyStyle   = textStyle{size: 10, color: Black}
	footerStyle = textStyle{size: 8, color: Gray}
)

// canvas appends primitives to a page and tracks whether text ran past the
// usable area.
type canvas struct {
	page     *Page
	m        Measurer
	overflow bool
}

func (c *canvas) width(s string, st textStyle) float64 {
	return c.m.Width(s, st.size, st.bold)
}

// text emits s unless it is blank.
func (c *canvas) text(s string, x, y float64, st textStyle) {
	if strings.TrimSpace(s) == "" {
		return
	}
	if y > bottomLimit {
		c.overflow = true
	}
	c.page.Primitives = append(c.page.Primitives, Text{
		Content:    s,
		X:          x,
		Y:          y,
		FontSizePt: st.size,
		Bold:       st.bold,
		Color:      st.color,
	})
}

// centered emits s horizontally centred on the page.
func (c *canvas) centered(s string, y float64, st textStyle) {
	c.text(s, (c.page.Width-c.width(s, st))/2, y, st)
}

// lines splits s into the lines it takes within budget.
func (c *canvas) lines(s string, st textStyle, budget float64) []string {
	return wrap(c.m, s, st.size, st.bold, budget)
}

// emit draws pre-wrapped lines from y downwards and returns the cursor below
// the last one.
func (c *canvas) emit(lines []string, x, y float64, st textStyle, advance float64) float64 {
	for _, line := range lines {
		c.text(line, x, y, st)
		y += advance
	}
	return y
}

// wrapped emits s as as many lines as the budget requires and returns the
// cursor below the last line.
func (c *canvas) wrapped(s string, x, y, budget float64, st textStyle, advance float64) float64 {
	return c.emit(c.lines(s, st, budget), x, y, st, advance)
}

// wrappedCentered is wrapped with every line centred on the page.
func (c *canvas) wrappedCentered(s string, y, budget float64, st textStyle, advance float64) float64 {
	for _, line := range wrap(c.m, s, st.size, st.bold, budget) {
		c.centered(line, y, st)
		y += advance
	}
	return y
}

func (c *canvas) fill(x, y, w, h float64, color Color) {
	c.page.Primitives = append(c.page.Primitives, Rect{X: x, Y: y, W: w, H: h, Color: color, Filled: true})
}

func (c *canvas) rule(x1, y1, x2, y2, width float64, color Color) {
	c.page.Primitives = append(c.page.Primitives, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color, Width: width})
}
