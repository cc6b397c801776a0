// Package feed builds the site's JSON Feed (https://jsonfeed.org/version/1.1).
package feed

import (
	"fmt"
	"net/url"
	"time"

	"github.com/arterdev/site/internal/config"
	"github.com/arterdev/site/internal/content"
)

const (
	Version     = "https://jsonfeed.org/version/1.1"
	ContentType = "application/feed+json; charset=utf-8"
	Path        = "feed.json"
)

type Feed struct {
	Version     string   `json:"version"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	HomePageURL string   `json:"home_page_url"`
	FeedURL     string   `json:"feed_url"`
	Language    string   `json:"language,omitempty"`
	Authors     []Author `json:"authors,omitempty"`
	Items       []Item   `json:"items"`
}

type Author struct {
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Item struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	ContentText   string   `json:"content_text"`
	URL           string   `json:"url"`
	DatePublished string   `json:"date_published"`
	DateModified  string   `json:"date_modified"`
	Tags          []string `json:"tags"`
	Author        Author   `json:"author"`
}

// Build assembles the feed for posts, which must already be newest first.
// At most limit posts are included.
func Build(site config.Site, siteURL string, posts []*content.Post, limit int) (*Feed, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("parse site url: %w", err)
	}
	if base.Path == "" {
		base.Path = "/"
	}

	author := Author{Name: site.Author.Name, URL: site.Author.URL}

	f := &Feed{
		Version:     Version,
		Title:       site.Title,
		Description: site.Description,
		HomePageURL: base.String(),
		FeedURL:     base.JoinPath(Path).String(),
		Language:    site.Language,
		Authors:     []Author{{Name: site.Author.Name, URL: site.Author.URL, Avatar: site.Author.Avatar}},
		Items:       []Item{},
	}

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	for _, p := range posts {
		link := base.JoinPath("blog", p.Slug+"/").String()
		f.Items = append(f.Items, Item{
			ID:            link,
			Title:         p.Title,
			ContentText:   p.Excerpt,
			URL:           link,
			DatePublished: p.PublishDate.Format(time.RFC3339),
			DateModified:  p.Modified().Format(time.RFC3339),
			Tags:          p.Tags,
			Author:        author,
		})
	}
	return f, nil
}
