package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/arterdev/site/internal/doctree"
	"github.com/arterdev/site/internal/headings"
)

var defaultEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
	goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// MarkdownParser handles markdown posts: frontmatter, outline and HTML.
// Rendered heading ids are produced by headings.Slugify, so they match the
// ids in Document.Headings.
type MarkdownParser struct {
	// Engine overrides the goldmark instance used for rendering.
	Engine goldmark.Markdown
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	meta, body, err := ParseFrontMatter(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	rendered, err := p.render(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	title := meta.Title
	if title == "" {
		title = Stem(filename)
	}

	return &doctree.Document{
		Title:    title,
		Meta:     meta,
		Body:     string(body),
		HTML:     rendered,
		Headings: headings.Extract(string(body)),
	}, nil
}

func (p *MarkdownParser) render(body []byte) (string, error) {
	engine := p.Engine
	if engine == nil {
		engine = defaultEngine
	}

	ctx := gmparser.NewContext(gmparser.WithIDs(headings.IDs{}))
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf, gmparser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
