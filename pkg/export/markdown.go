package export

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns an entry body into HTML.
type Renderer interface {
	Render(markdown string) (html string, err error)
}

// Markdown renders GitHub-flavoured markdown with goldmark. Raw HTML in the
// input is dropped.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a goldmark-backed Renderer.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts markdown to HTML. An empty body renders to an empty string.
func (m *Markdown) Render(markdown string) (html string, err error) {
	if markdown == "" {
		return html, err
	}

	var buf bytes.Buffer
	err = m.md.Convert([]byte(markdown), &buf)
	if err != nil {
		err = errors.Wrap(err, "failed to render markdown")
		return html, err
	}

	html = buf.String()
	return html, err
}
