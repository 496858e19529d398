package infrastructure

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"resume-builder/internal/usecase"

	qrcode "github.com/skip2/go-qrcode"
)

// QREncoder builds PNG QR codes with a configurable quiet zone, which
// go-qrcode's own PNG writer fixes at four modules.
type QREncoder struct {
	level qrcode.RecoveryLevel
}

func NewQREncoder() *QREncoder {
	return &QREncoder{level: qrcode.Medium}
}

func (e *QREncoder) Encode(text string, opts usecase.QROptions) ([]byte, error) {
	dark, err := parseHexColor(opts.Dark)
	if err != nil {
		return nil, err
	}
	light, err := parseHexColor(opts.Light)
	if err != nil {
		return nil, err
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("qr: size must be positive, got %d", opts.Size)
	}

	q, err := qrcode.New(text, e.level)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	q.DisableBorder = true
	modules := q.Bitmap()

	total := len(modules) + 2*opts.Margin
	if opts.Size < total {
		return nil, fmt.Errorf("qr: %dpx cannot hold %d modules", opts.Size, total)
	}

	img := image.NewPaletted(image.Rect(0, 0, opts.Size, opts.Size), color.Palette{light, dark})
	for py := 0; py < opts.Size; py++ {
		my := py*total/opts.Size - opts.Margin
		for px := 0; px < opts.Size; px++ {
			mx := px*total/opts.Size - opts.Margin
			if my >= 0 && my < len(modules) && mx >= 0 && mx < len(modules) && modules[my][mx] {
				img.SetColorIndex(px, py, 1)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("qr: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("qr: invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
