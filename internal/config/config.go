package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Content
	ContentDir     string
	SiteConfigPath string
	SiteURL        string

	// Auth for admin routes; admin routes are disabled when empty.
	AdminAPIKey string

	// Content watching
	WatchContent  bool
	WatchDebounce time.Duration

	// Feed
	FeedLimit int

	// Upload limits
	MaxTOCBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		ContentDir:     envOr("CONTENT_DIR", "content"),
		SiteConfigPath: envOr("SITE_CONFIG", "site.yaml"),
		SiteURL:        envOr("SITE_URL", "https://arter.dev"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		WatchContent:  envBool("WATCH_CONTENT", true),
		WatchDebounce: envDuration("WATCH_DEBOUNCE", 250*time.Millisecond),

		FeedLimit: envInt("FEED_LIMIT", 20),

		MaxTOCBytes: envInt64("MAX_TOC_BYTES", 1<<20), // 1MB
	}

	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 250 * time.Millisecond
	}
	if cfg.FeedLimit <= 0 {
		cfg.FeedLimit = 20
	}
	if cfg.MaxTOCBytes <= 0 {
		cfg.MaxTOCBytes = 1 << 20
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("CONTENT_DIR is required")
	}
	u, err := url.Parse(c.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SITE_URL must be an absolute URL, got %q", c.SiteURL)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
