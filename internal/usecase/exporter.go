// Package usecase holds the export pipeline: layout, render, deliver.
package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/layout"
	"resume-builder/internal/logging"
	"resume-builder/internal/model"

	"github.com/sirupsen/logrus"
)

// Artifact is a downloadable export.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
	// Location is where the artifact store kept a copy, if any.
	Location string
}

// DataURI encodes the artifact inline, as used for QR previews.
func (a *Artifact) DataURI() string {
	return "data:" + a.ContentType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

type Exporter struct {
	engine   *layout.Engine
	renderer Renderer
	qr       QREncoder
	store    ArtifactStore

	attempts int
	backoff  time.Duration
}

type ExporterOption func(*Exporter)

// WithArtifactStore keeps a copy of every exported PDF.
func WithArtifactStore(s ArtifactStore) ExporterOption {
	return func(e *Exporter) { e.store = s }
}

// WithRetry sets the render attempts and the first backoff, which doubles
// after every failed attempt.
func WithRetry(attempts int, backoff time.Duration) ExporterOption {
	return func(e *Exporter) {
		if attempts > 0 {
			e.attempts = attempts
		}
		e.backoff = backoff
	}
}

func NewExporter(engine *layout.Engine, r Renderer, qr QREncoder, opts ...ExporterOption) *Exporter {
	e := &Exporter{engine: engine, renderer: r, qr: qr, attempts: 3, backoff: time.Second}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportPDF lays data out with the chosen template and renders it. The draft
// is only read.
func (e *Exporter) ExportPDF(ctx context.Context, data model.ResumeData, templateID string) (*Artifact, error) {
	if strings.TrimSpace(templateID) == "" {
		return nil, exportErr(ErrKindNoTemplate, nil)
	}
	id, err := layout.ParseTemplateID(templateID)
	if err != nil {
		return nil, exportErr(ErrKindUnknownTemplate, err)
	}

	page, err := e.engine.Layout(data, id)
	if err != nil {
		var ute *layout.UnknownTemplateError
		if errors.As(err, &ute) {
			return nil, exportErr(ErrKindUnknownTemplate, err)
		}
		return nil, exportErr(ErrKindRender, err)
	}
	log := logging.Logger.WithFields(logrus.Fields{"template": string(id), "primitives": len(page.Primitives)})
	if page.Overflow {
		log.Warn("exporter: content runs past the page")
	}

	pdf, err := e.render(ctx, page)
	if err != nil {
		return nil, err
	}

	art := &Artifact{FileName: FileName(data.PersonalInfo), ContentType: "application/pdf", Data: pdf}
	if e.store != nil {
		loc, err := e.store.Put(ctx, art.FileName, pdf)
		if err != nil {
			return nil, exportErr(ErrKindDelivery, err)
		}
		art.Location = loc
	}
	log.WithField("bytes", len(pdf)).Info("exporter: pdf exported")
	return art, nil
}

// render retries with exponential backoff and checks the PDF signature.
func (e *Exporter) render(ctx context.Context, page *layout.Page) ([]byte, error) {
	var lastErr error
	for i := 0; i < e.attempts; i++ {
		out, err := e.renderer.Render(ctx, page)
		if err == nil {
			if bytes.HasPrefix(out, []byte("%PDF")) {
				return out, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(out))
		}
		lastErr = err
		logging.Logger.WithError(err).WithField("attempt", i+1).Warn("exporter: render attempt failed")

		if i < e.attempts-1 {
			select {
			case <-time.After(e.backoff << i):
			case <-ctx.Done():
				return nil, exportErr(ErrKindRender, ctx.Err())
			}
		}
	}
	return nil, exportErr(ErrKindRender, fmt.Errorf("after %d attempts: %w", e.attempts, lastErr))
}

// ExportQR encodes payload, typically a link to the resume, as a PNG.
func (e *Exporter) ExportQR(ctx context.Context, payload string) (*Artifact, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, exportErr(ErrKindQR, errors.New("empty payload"))
	}
	if err := ctx.Err(); err != nil {
		return nil, exportErr(ErrKindQR, err)
	}
	png, err := e.qr.Encode(payload, DefaultQROptions)
	if err != nil {
		logging.Logger.WithError(err).Warn("exporter: qr encoding failed")
		return nil, exportErr(ErrKindQR, err)
	}
	return &Artifact{FileName: QRFileName, ContentType: "image/png", Data: png}, nil
}
