package usecase

import (
	"context"

	"resume-builder/internal/layout"
)

// Renderer turns a laid out page into a PDF document.
type Renderer interface {
	Render(ctx context.Context, page *layout.Page) ([]byte, error)
}

// QROptions configure the QR image.
type QROptions struct {
	Size   int    // pixels per side
	Margin int    // quiet zone in modules
	Dark   string // #rrggbb
	Light  string // #rrggbb
}

// DefaultQROptions is a 200px black on white code with a two module margin.
var DefaultQROptions = QROptions{Size: 200, Margin: 2, Dark: "#000000", Light: "#FFFFFF"}

// QREncoder encodes text as a PNG image.
type QREncoder interface {
	Encode(text string, opts QROptions) ([]byte, error)
}

// ArtifactStore keeps a copy of exported files. It is optional.
type ArtifactStore interface {
	Put(ctx context.Context, name string, data []byte) (location string, err error)
}
