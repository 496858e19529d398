package layout

import (
	"github.com/go-pdf/fpdf"
)

// Measurer reports the rendered width of a string in millimetres.
type Measurer interface {
	Width(text string, sizePt float64, bold bool) float64
}

// HelveticaMeasurer uses the Helvetica core font metrics shipped with fpdf,
// the same font the fpdf renderer draws with. It is not safe for concurrent
// use; the engine creates one per layout.
type HelveticaMeasurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func NewHelveticaMeasurer() *HelveticaMeasurer {
	pdf := fpdf.New("P", "mm", "A4", "")
	return &HelveticaMeasurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (m *HelveticaMeasurer) Width(text string, sizePt float64, bold bool) float64 {
	style := ""
	if bold {
		style = "B"
	}
	m.pdf.SetFont("Helvetica", style, sizePt)
	return m.pdf.GetStringWidth(m.tr(text))
}
