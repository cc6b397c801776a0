package parser

import (
	"io"

	"github.com/arterdev/site/internal/doctree"
	"github.com/arterdev/site/internal/headings"
)

// TextParser handles plain text files. ATX heading lines still produce an
// outline; nothing is rendered.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	body := string(src)
	return &doctree.Document{
		Title:    Stem(filename),
		Body:     body,
		Headings: headings.Extract(body),
	}, nil
}
