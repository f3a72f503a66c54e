package searchdrop

import (
	"net/url"
	"time"
)

// DefaultQuietInterval is how long typing must pause before a search is sent.
const DefaultQuietInterval = 300 * time.Millisecond

// Config holds the settings shared by every searchdrop front end.
type Config struct {
	// BaseURL is the site origin serving /api/search and /search.
	BaseURL string

	// StaticRoot prefixes image paths that are not site-absolute.
	StaticRoot string

	// QuietInterval is the debounce delay.
	QuietInterval time.Duration

	// Timeout bounds each search request. Zero means no timeout.
	Timeout time.Duration

	// RateLimit caps outgoing searches per second. Zero means unlimited.
	RateLimit float64

	// DBPath is the SQLite search log location. Empty means searchdrop.db
	// in the data directory.
	DBPath string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       "http://localhost:5000",
		StaticRoot:    DefaultStaticRoot,
		QuietInterval: DefaultQuietInterval,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be absolute", c.BaseURL)
	}
	if c.QuietInterval <= 0 {
		return Errorf(EINVALID, "quiet interval must be positive")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must not be negative")
	}
	return nil
}
