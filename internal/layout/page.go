// Package layout turns a resume into a fixed A4 page of drawing primitives.
// It performs no I/O; renderers in pkg/infrastructure turn a Page into bytes.
package layout

// Page geometry in millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	Margin         = 20.0
	LineAdvance    = 6.0
	HeadingAdvance = 10.0
	SectionGap     = 10.0

	// content below this line does not fit above the footer
	bottomLimit = PageHeight - 15
)

type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Gray      = Color{128, 128, 128}
	Blue      = Color{59, 130, 246}
	Purple    = Color{147, 51, 234}
	Amber     = Color{217, 119, 6}
	Cyan      = Color{8, 145, 178}
	Slate     = Color{51, 65, 85}
	Ink       = Color{15, 23, 42}
	LightGray = Color{226, 232, 240}
)

// Primitive is one of Text, Rect or Line.
type Primitive interface {
	primitive()
}

// Text is a single line of text. X and Y locate the left end of the baseline.
type Text struct {
	Content    string
	X, Y       float64
	FontSizePt float64
	Bold       bool
	Color      Color
}

type Rect struct {
	X, Y, W, H float64
	Color      Color
	Filled     bool
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

func (Text) primitive() {}
func (Rect) primitive() {}
func (Line) primitive() {}

// Page is the ordered primitive sequence of one rendered resume. Overflow
// reports content that ran below the usable area; it is still emitted.
type Page struct {
	Template   TemplateID
	Width      float64
	Height     float64
	Primitives []Primitive
	Overflow   bool
}

// Texts returns the text primitives in emission order.
func (p *Page) Texts() []Text {
	var out []Text
	for _, prim := range p.Primitives {
		if t, ok := prim.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}
