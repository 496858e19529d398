package layout

import (
	"time"

	"resume-builder/internal/model"
)

// Engine maps resumes to pages. Without WithTimestamp the output depends on
// its input only.
type Engine struct {
	clock       func() time.Time
	newMeasurer func() Measurer
}

type Option func(*Engine)

// WithTimestamp adds a "Generated on" footer dated by clock.
func WithTimestamp(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithMeasurer replaces the text metrics. fn is called once per layout.
func WithMeasurer(fn func() Measurer) Option {
	return func(e *Engine) { e.newMeasurer = fn }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		newMeasurer: func() Measurer { return NewHelveticaMeasurer() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Layout renders data with the template registered for id.
func (e *Engine) Layout(data model.ResumeData, id TemplateID) (*Page, error) {
	tpl, ok := registry[id]
	if !ok {
		return nil, &UnknownTemplateError{ID: string(id)}
	}

	page := &Page{Template: id, Width: PageWidth, Height: PageHeight}
	c := &canvas{page: page, m: e.newMeasurer()}
	tpl.layout(c, data.Normalize())
	page.Overflow = c.overflow

	if e.clock != nil {
		c.text("Generated on "+e.clock().Format("1/2/2006"), Margin, PageHeight-10, footerStyle)
	}
	return page, nil
}
