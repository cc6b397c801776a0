package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Site is the public metadata of the site: header, footer, hero and the
// defaults the feed and listings use.
type Site struct {
	Title           string `yaml:"title" json:"title"`
	Subtitle        string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description     string `yaml:"description" json:"description"`
	Language        string `yaml:"language" json:"language"`
	Author          Author `yaml:"author" json:"author"`
	Logo            *Image `yaml:"logo,omitempty" json:"logo,omitempty"`
	Image           *Image `yaml:"image,omitempty" json:"image,omitempty"`
	HeaderNavLinks  []Link `yaml:"headerNavLinks,omitempty" json:"header_nav_links,omitempty"`
	FooterNavLinks  []Link `yaml:"footerNavLinks,omitempty" json:"footer_nav_links,omitempty"`
	SocialLinks     []Link `yaml:"socialLinks,omitempty" json:"social_links,omitempty"`
	Hero            *Hero  `yaml:"hero,omitempty" json:"hero,omitempty"`
	PostsPerPage    int    `yaml:"postsPerPage" json:"posts_per_page"`
	ProjectsPerPage int    `yaml:"projectsPerPage" json:"projects_per_page"`
}

type Author struct {
	Name   string `yaml:"name" json:"name"`
	URL    string `yaml:"url,omitempty" json:"url,omitempty"`
	Avatar string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
}

type Image struct {
	Src     string `yaml:"src" json:"src"`
	Alt     string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
}

type Link struct {
	Text string `yaml:"text" json:"text"`
	Href string `yaml:"href" json:"href"`
}

type Hero struct {
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
	Image   *Image `yaml:"image,omitempty" json:"image,omitempty"`
	Actions []Link `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// DefaultSite is used for any field the site file leaves empty.
func DefaultSite() Site {
	return Site{
		Title:           "Chris Arter",
		Subtitle:        "Software Engineer",
		Description:     "Notes on Laravel, Docker and software engineering.",
		Language:        "en",
		Author:          Author{Name: "Chris Arter", URL: "https://arter.dev"},
		PostsPerPage:    8,
		ProjectsPerPage: 8,
	}
}

// LoadSite reads the site metadata file. A missing file yields DefaultSite.
func LoadSite(path string) (Site, error) {
	site := DefaultSite()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return Site{}, fmt.Errorf("read site config: %w", err)
	}

	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("parse site config %s: %w", path, err)
	}

	defaults := DefaultSite()
	if site.Title == "" {
		site.Title = defaults.Title
	}
	if site.Language == "" {
		site.Language = defaults.Language
	}
	if site.Author.Name == "" {
		site.Author = defaults.Author
	}
	if site.PostsPerPage <= 0 {
		site.PostsPerPage = defaults.PostsPerPage
	}
	if site.ProjectsPerPage <= 0 {
		site.ProjectsPerPage = defaults.ProjectsPerPage
	}
	return site, nil
}
