package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/layout"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromedpRenderer prints the page through headless Chrome. The page is
// drawn as one inline SVG in millimetre units so coordinates carry over
// unchanged.
type ChromedpRenderer struct {
	execPath string
	timeout  time.Duration
}

func NewChromedpRenderer(execPath string) *ChromedpRenderer {
	return &ChromedpRenderer{execPath: execPath, timeout: 60 * time.Second}
}

func (r *ChromedpRenderer) Render(ctx context.Context, p *layout.Page) ([]byte, error) {
	html, err := PageHTML(p)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp print: %w", err)
	}
	return pdfBuf, nil
}

// 1pt in mm
const ptToMM = 25.4 / 72

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"rgb": func(c layout.Color) string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) },
	"mm":  func(pt float64) float64 { return pt * ptToMM },
	"kind": func(p layout.Primitive) string {
		switch p.(type) {
		case layout.Text:
			return "text"
		case layout.Rect:
			return "rect"
		case layout.Line:
			return "line"
		}
		return ""
	},
	"stroke": func(w float64) float64 {
		if w <= 0 {
			return 0.2
		}
		return w
	},
}).Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; }
svg { display: block; font-family: Helvetica, Arial, sans-serif; }
</style></head>
<body>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}mm" height="{{.Height}}mm" viewBox="0 0 {{.Width}} {{.Height}}">
{{- range .Primitives}}
{{- if eq (kind .) "rect"}}
<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" {{if .Filled}}fill="{{rgb .Color}}"{{else}}fill="none" stroke="{{rgb .Color}}" stroke-width="0.2"{{end}}/>
{{- else if eq (kind .) "line"}}
<line x1="{{.X1}}" y1="{{.Y1}}" x2="{{.X2}}" y2="{{.Y2}}" stroke="{{rgb .Color}}" stroke-width="{{stroke .Width}}"/>
{{- else if eq (kind .) "text"}}
<text x="{{.X}}" y="{{.Y}}" font-size="{{mm .FontSizePt}}" fill="{{rgb .Color}}"{{if .Bold}} font-weight="bold"{{end}} xml:space="preserve">{{.Content}}</text>
{{- end}}
{{- end}}
</svg>
</body></html>
`))

// PageHTML draws p as a standalone HTML document.
func PageHTML(p *layout.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render page html: %w", err)
	}
	return buf.Bytes(), nil
}
