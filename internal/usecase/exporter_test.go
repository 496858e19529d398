package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	calls   int32
	failFor int32
	output  []byte
}

func (f *fakeRenderer) Render(ctx context.Context, page *layout.Page) ([]byte, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if n <= f.failFor {
		return nil, errors.New("browser crashed")
	}
	if f.output != nil {
		return f.output, nil
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeQR struct {
	err  error
	got  string
	opts QROptions
}

func (f *fakeQR) Encode(text string, opts QROptions) ([]byte, error) {
	f.got, f.opts = text, opts
	if f.err != nil {
		return nil, f.err
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

type memArtifacts struct {
	names []string
	err   error
}

func (m *memArtifacts) Put(ctx context.Context, name string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.names = append(m.names, name)
	return "mem://" + name, nil
}

func resume() model.ResumeData {
	d := model.New()
	d.PersonalInfo = model.PersonalInfo{FirstName: "Jane", LastName: " Doe Smith ", Email: "jane@x.com"}
	return d
}

func newExporter(r Renderer, qr QREncoder, opts ...ExporterOption) *Exporter {
	opts = append([]ExporterOption{WithRetry(3, time.Millisecond)}, opts...)
	return NewExporter(layout.NewEngine(), r, qr, opts...)
}

func kindOf(t *testing.T, err error) ExportErrorKind {
	t.Helper()
	var ee *ExportError
	require.ErrorAs(t, err, &ee)
	return ee.Kind
}

func TestFileName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Jane", " Doe Smith ", "Jane_Doe_Smith_Resume.pdf"},
		{"Jane", "Doe", "Jane_Doe_Resume.pdf"},
		{"  Mary\tAnn ", "O'Neil", "Mary_Ann_O'Neil_Resume.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(model.PersonalInfo{FirstName: tt.first, LastName: tt.last}))
	}
}

func TestExportPDF(t *testing.T) {
	r := &fakeRenderer{}
	store := &memArtifacts{}
	art, err := newExporter(r, &fakeQR{}, WithArtifactStore(store)).ExportPDF(context.Background(), resume(), "modern")
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe_Smith_Resume.pdf", art.FileName)
	assert.Equal(t, "application/pdf", art.ContentType)
	assert.Equal(t, "mem://Jane_Doe_Smith_Resume.pdf", art.Location)
	assert.Equal(t, int32(1), r.calls)
}

func TestExportPDF_TemplateRequired(t *testing.T) {
	e := newExporter(&fakeRenderer{}, &fakeQR{})

	_, err := e.ExportPDF(context.Background(), resume(), " ")
	assert.Equal(t, ErrKindNoTemplate, kindOf(t, err))

	_, err = e.ExportPDF(context.Background(), resume(), "fancy")
	assert.Equal(t, ErrKindUnknownTemplate, kindOf(t, err))
	var ute *layout.UnknownTemplateError
	assert.ErrorAs(t, err, &ute)
}

func TestExportPDF_RetriesRender(t *testing.T) {
	r := &fakeRenderer{failFor: 2}
	_, err := newExporter(r, &fakeQR{}).ExportPDF(context.Background(), resume(), "minimal")
	require.NoError(t, err)
	assert.Equal(t, int32(3), r.calls)
}

func TestExportPDF_RenderFailure(t *testing.T) {
	t.Run("renderer error", func(t *testing.T) {
		r := &fakeRenderer{failFor: 10}
		_, err := newExporter(r, &fakeQR{}).ExportPDF(context.Background(), resume(), "creative")
		assert.Equal(t, ErrKindRender, kindOf(t, err))
		assert.Equal(t, int32(3), r.calls)
	})
	t.Run("not a pdf", func(t *testing.T) {
		r := &fakeRenderer{output: []byte("<html>")}
		_, err := newExporter(r, &fakeQR{}).ExportPDF(context.Background(), resume(), "creative")
		assert.Equal(t, ErrKindRender, kindOf(t, err))
	})
	t.Run("cancelled during backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := &fakeRenderer{failFor: 10}
		_, err := NewExporter(layout.NewEngine(), r, &fakeQR{}, WithRetry(3, time.Hour)).ExportPDF(ctx, resume(), "modern")
		assert.Equal(t, ErrKindRender, kindOf(t, err))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), r.calls)
	})
}

func TestExportPDF_DeliveryFailure(t *testing.T) {
	store := &memArtifacts{err: errors.New("read-only file system")}
	_, err := newExporter(&fakeRenderer{}, &fakeQR{}, WithArtifactStore(store)).ExportPDF(context.Background(), resume(), "tech")
	assert.Equal(t, ErrKindDelivery, kindOf(t, err))
}

func TestExportPDF_DoesNotTouchDraft(t *testing.T) {
	data := resume()
	data.Skills = []model.Skill{{Name: "Go"}}
	before := data.Clone()
	_, err := newExporter(&fakeRenderer{}, &fakeQR{}).ExportPDF(context.Background(), data, "classic")
	require.NoError(t, err)
	assert.Equal(t, before, data)
}

func TestExportQR(t *testing.T) {
	qr := &fakeQR{}
	art, err := newExporter(&fakeRenderer{}, qr).ExportQR(context.Background(), "https://example.com/r/jane")
	require.NoError(t, err)
	assert.Equal(t, QRFileName, art.FileName)
	assert.Equal(t, "image/png", art.ContentType)
	assert.Equal(t, DefaultQROptions, qr.opts)
	assert.Equal(t, "data:image/png;base64,iVBORw==", art.DataURI())
}

func TestExportQR_Failures(t *testing.T) {
	e := newExporter(&fakeRenderer{}, &fakeQR{err: errors.New("data too long")})
	_, err := e.ExportQR(context.Background(), "x")
	assert.Equal(t, ErrKindQR, kindOf(t, err))
	var ee *ExportError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "QR generation failed", ee.Message)

	_, err = newExporter(&fakeRenderer{}, &fakeQR{}).ExportQR(context.Background(), "  ")
	assert.Equal(t, ErrKindQR, kindOf(t, err))
}
