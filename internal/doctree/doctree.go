package doctree

import "time"

// Heading is one markdown heading and the sub-headings nested under it.
type Heading struct {
	ID       string     `json:"id"`             // URL-safe anchor derived from Text
	Text     string     `json:"text"`           // Literal heading text, inline markup kept
	Level    int        `json:"level"`          // 2..6
	Line     int        `json:"line,omitempty"` // 1-based source line (0 if N/A)
	Children []*Heading `json:"children"`       // Each child has a greater Level
}

// Document is a parsed source file.
type Document struct {
	Title    string     // Frontmatter title, <title>, or filename stem
	Meta     Meta       // Frontmatter (zero for non-markdown sources)
	Body     string     // Source text with frontmatter removed
	HTML     string     // Rendered HTML (empty for plain text)
	Headings []*Heading // Outline of the body
}

// Meta is the frontmatter of a blog post.
type Meta struct {
	Title       string
	Slug        string
	Subtitle    string
	Author      string
	Excerpt     string
	PublishDate time.Time
	UpdatedDate time.Time
	Tags        []string
	Featured    bool
	Draft       bool
}

// Walk visits the forest in document order. Returning false from fn skips
// the children of that heading.
func Walk(forest []*Heading, fn func(h *Heading, depth int) bool) {
	walk(forest, 0, fn)
}

func walk(nodes []*Heading, depth int, fn func(*Heading, int) bool) {
	for _, h := range nodes {
		if fn(h, depth) {
			walk(h.Children, depth+1, fn)
		}
	}
}

// Flatten returns every heading of the forest in document order.
func Flatten(forest []*Heading) []*Heading {
	var out []*Heading
	Walk(forest, func(h *Heading, _ int) bool {
		out = append(out, h)
		return true
	})
	return out
}
