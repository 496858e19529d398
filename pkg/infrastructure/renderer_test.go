package infrastructure

import (
	"bytes"
	"context"
	"os"
	"testing"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage(t *testing.T, id layout.TemplateID) *layout.Page {
	t.Helper()
	d := model.New()
	d.PersonalInfo = model.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Title: "Développeuse"}
	d.Skills = []model.Skill{{Name: "Go"}, {Name: "SQL"}}
	d.Summary = "Builds things & ships them <quickly>."
	page, err := layout.NewEngine().Layout(d, id)
	require.NoError(t, err)
	return page
}

func TestFPDFRenderer(t *testing.T) {
	for _, id := range []layout.TemplateID{layout.TemplateModern, layout.TemplateMinimal, layout.TemplateCreative} {
		t.Run(string(id), func(t *testing.T) {
			out, err := NewFPDFRenderer().Render(context.Background(), samplePage(t, id))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}
}

func TestFPDFRenderer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFPDFRenderer().Render(ctx, samplePage(t, layout.TemplateModern))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPageHTML(t *testing.T) {
	out, err := PageHTML(samplePage(t, layout.TemplateModern))
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `viewBox="0 0 210 297"`)
	assert.Contains(t, html, `fill="rgb(59,130,246)"`)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "&lt;quickly&gt;")
	assert.NotContains(t, html, "<quickly>")
}

func TestChromedpRenderer(t *testing.T) {
	path := os.Getenv("CHROME_PATH")
	if path == "" {
		t.Skip("CHROME_PATH not set")
	}
	out, err := NewChromedpRenderer(path).Render(context.Background(), samplePage(t, layout.TemplateTech))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
