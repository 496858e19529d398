package infrastructure

import (
	"bytes"
	"context"
	"fmt"

	"resume-builder/internal/layout"

	"github.com/go-pdf/fpdf"
)

// FPDFRenderer draws the page with fpdf's built-in Helvetica. It needs no
// external process and is the default renderer.
type FPDFRenderer struct{}

func NewFPDFRenderer() *FPDFRenderer { return &FPDFRenderer{} }

func (r *FPDFRenderer) Render(ctx context.Context, p *layout.Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: p.Width, Ht: p.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Resume", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, prim := range p.Primitives {
		switch v := prim.(type) {
		case layout.Rect:
			style := "D"
			if v.Filled {
				style = "F"
				pdf.SetFillColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
			} else {
				pdf.SetDrawColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
			}
			pdf.Rect(v.X, v.Y, v.W, v.H, style)
		case layout.Line:
			w := v.Width
			if w <= 0 {
				w = 0.2
			}
			pdf.SetLineWidth(w)
			pdf.SetDrawColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
			pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
		case layout.Text:
			style := ""
			if v.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, v.FontSizePt)
			pdf.SetTextColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
			pdf.Text(v.X, v.Y, tr(v.Content))
		default:
			return nil, fmt.Errorf("fpdf: unsupported primitive %T", prim)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("fpdf output: %w", err)
	}
	return buf.Bytes(), nil
}
