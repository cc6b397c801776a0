package content

import (
	"time"

	"github.com/arterdev/site/internal/doctree"
)

// Post is a published blog post.
type Post struct {
	Slug           string             `json:"slug"`
	Title          string             `json:"title"`
	Subtitle       string             `json:"subtitle,omitempty"`
	Author         string             `json:"author,omitempty"`
	Excerpt        string             `json:"excerpt,omitempty"`
	PublishDate    time.Time          `json:"publish_date"`
	UpdatedDate    time.Time          `json:"updated_date,omitzero"`
	Tags           []string           `json:"tags"`
	Featured       bool               `json:"featured"`
	ReadingMinutes int                `json:"reading_minutes"`
	HTML           string             `json:"html,omitempty"`
	Headings       []*doctree.Heading `json:"headings,omitempty"`

	SourcePath string `json:"-"`
}

// Summary is a Post without its rendered body and outline, for listings.
func (p *Post) Summary() Post {
	s := *p
	s.HTML = ""
	s.Headings = nil
	return s
}

// Modified returns UpdatedDate, or PublishDate when the post was never updated.
func (p *Post) Modified() time.Time {
	if p.UpdatedDate.IsZero() {
		return p.PublishDate
	}
	return p.UpdatedDate
}

func newPost(path string, slug string, doc *doctree.Document) *Post {
	tags := doc.Meta.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Post{
		Slug:           slug,
		Title:          doc.Title,
		Subtitle:       doc.Meta.Subtitle,
		Author:         doc.Meta.Author,
		Excerpt:        doc.Meta.Excerpt,
		PublishDate:    doc.Meta.PublishDate,
		UpdatedDate:    doc.Meta.UpdatedDate,
		Tags:           tags,
		Featured:       doc.Meta.Featured,
		ReadingMinutes: EstimateReadingMinutes(doc.Body),
		HTML:           doc.HTML,
		Headings:       doc.Headings,
		SourcePath:     path,
	}
}
