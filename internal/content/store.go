package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/arterdev/site/internal/headings"
	"github.com/arterdev/site/internal/parser"
)

// BlogDir is the collection directory under the content root.
const BlogDir = "blog"

var ErrNotFound = errors.New("post not found")

// Store holds the published posts of a content directory. Readers never
// block on a reload; the post set is swapped in whole.
type Store struct {
	dir string
	log *slog.Logger

	mu       sync.RWMutex
	posts    []*Post // sorted newest first
	bySlug   map[string]*Post
	loadedAt time.Time
}

func NewStore(dir string, log *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		log:    log,
		bySlug: map[string]*Post{},
	}
}

// Dir returns the blog collection directory.
func (s *Store) Dir() string {
	return filepath.Join(s.dir, BlogDir)
}

// Load reads every supported file of the blog collection. Files that fail
// to parse are logged and skipped; drafts are excluded.
func (s *Store) Load(ctx context.Context) error {
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}

	var posts []*Post
	bySlug := make(map[string]*Post, len(entries))
	drafts, failed := 0, 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !parser.IsSupportedExtension(entry.Name()) {
			continue
		}

		path := filepath.Join(s.Dir(), entry.Name())
		post, err := loadPost(path)
		if err != nil {
			failed++
			s.log.Warn("skipping post", "path", path, "error", err)
			continue
		}
		if post == nil {
			drafts++
			continue
		}
		if prev, ok := bySlug[post.Slug]; ok {
			failed++
			s.log.Warn("duplicate post slug", "slug", post.Slug, "path", path, "kept", prev.SourcePath)
			continue
		}

		bySlug[post.Slug] = post
		posts = append(posts, post)
	}

	slices.SortFunc(posts, func(a, b *Post) int {
		if c := b.PublishDate.Compare(a.PublishDate); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})

	s.mu.Lock()
	s.posts = posts
	s.bySlug = bySlug
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.log.Info("content loaded", "dir", s.Dir(), "posts", len(posts), "drafts", drafts, "failed", failed)
	return nil
}

// Reload re-reads the collection while readers keep the previous set.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// loadPost returns nil, nil for drafts.
func loadPost(path string) (*Post, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := p.Parse(f, path)
	if err != nil {
		return nil, err
	}
	if doc.Meta.Draft {
		return nil, nil
	}

	slug := doc.Meta.Slug
	if slug == "" {
		slug = parser.Stem(path)
	}
	slug = headings.Slugify(slug)
	if slug == "" {
		return nil, fmt.Errorf("empty slug")
	}

	return newPost(path, slug, doc), nil
}

// Get returns the post with the given slug.
func (s *Store) Get(slug string) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return post, nil
}

// List returns one page (1-based) of posts and the total post count.
func (s *Store) List(page, perPage int) ([]*Post, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.posts)
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = total
	}

	start := (page - 1) * perPage
	if start >= total {
		return []*Post{}, total
	}
	end := min(start+perPage, total)
	return slices.Clone(s.posts[start:end]), total
}

// Recent returns up to n of the newest posts, or all of them when n <= 0.
func (s *Store) Recent(n int) []*Post {
	posts, _ := s.List(1, n)
	return posts
}

// LoadedAt reports when the post set was last replaced.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
