package tagsub

import (
	"context"
	"io"
)

// Template pairs a named body of text with its property bag. Interpretation
// works on a fresh working buffer every time; the stored text is never
// mutated, so a template can be interpreted repeatedly.
type Template struct {
	name   string
	text   string
	props  *Properties
	engine *Engine
}

// NewTemplate wraps a body of text as a template bound to this engine.
func (e *Engine) NewTemplate(name, text string) *Template {
	return &Template{
		name:   name,
		text:   text,
		props:  NewProperties(),
		engine: e,
	}
}

// LoadTemplate fetches a template body from src by name and wraps it.
func (e *Engine) LoadTemplate(ctx context.Context, src Source, name string) (*Template, error) {
	text, err := src.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.NewTemplate(name, text), nil
}

// Name returns the template's name.
func (t *Template) Name() string {
	return t.name
}

// Text returns the template's stored text.
func (t *Template) Text() string {
	return t.text
}

// Properties returns the template's property bag.
func (t *Template) Properties() *Properties {
	return t.props
}

// Interpret renders the template in collecting mode.
func (t *Template) Interpret(ctx context.Context) (string, error) {
	return t.engine.Interpret(ctx, t.text)
}

// InterpretTo renders the template in streaming mode, writing finalized
// plain-text chunks to w as interpretation progresses.
func (t *Template) InterpretTo(ctx context.Context, w io.Writer) error {
	return t.engine.InterpretTo(ctx, w, t.text)
}
