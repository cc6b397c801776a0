package parser

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/arterdev/site/internal/doctree"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFrontMatter splits source into its frontmatter metadata and the
// markdown body. Sources without frontmatter return zero Meta and the whole
// source as body.
func ParseFrontMatter(source []byte) (doctree.Meta, []byte, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return doctree.Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta, err := env.toMeta()
	if err != nil {
		return doctree.Meta{}, nil, err
	}
	return meta, body, nil
}

type frontMatterEnvelope struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Subtitle    string   `yaml:"subtitle"`
	Author      string   `yaml:"author"`
	Excerpt     string   `yaml:"excerpt"`
	PublishDate string   `yaml:"publishDate"`
	UpdatedDate string   `yaml:"updatedDate"`
	DateUpdated string   `yaml:"dateUpdated"` // legacy name for updatedDate
	Featured    bool     `yaml:"isFeatured"`
	Draft       bool     `yaml:"draft"`
	Tags        []string `yaml:"tags"`
}

func (env frontMatterEnvelope) toMeta() (doctree.Meta, error) {
	published, err := parseDate("publishDate", env.PublishDate)
	if err != nil {
		return doctree.Meta{}, err
	}

	updatedRaw := env.UpdatedDate
	if strings.TrimSpace(updatedRaw) == "" {
		updatedRaw = env.DateUpdated
	}
	updated, err := parseDate("updatedDate", updatedRaw)
	if err != nil {
		return doctree.Meta{}, err
	}

	return doctree.Meta{
		Title:       strings.TrimSpace(env.Title),
		Slug:        strings.TrimSpace(env.Slug),
		Subtitle:    env.Subtitle,
		Author:      env.Author,
		Excerpt:     strings.TrimSpace(env.Excerpt),
		PublishDate: published,
		UpdatedDate: updated,
		Tags:        append([]string(nil), env.Tags...),
		Featured:    env.Featured,
		Draft:       env.Draft,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse frontmatter: invalid %s %q", field, value)
}
