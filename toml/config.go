// Package toml loads and saves searchdrop configuration files.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/searchdrop"
	"github.com/pelletier/go-toml/v2"
)

// file is the on-disk layout. Durations are strings such as "300ms".
type file struct {
	BaseURL       string  `toml:"base_url,omitempty"`
	StaticRoot    string  `toml:"static_root,omitempty"`
	QuietInterval string  `toml:"quiet_interval,omitempty"`
	Timeout       string  `toml:"timeout,omitempty"`
	RateLimit     float64 `toml:"rate_limit,omitempty"`
	DBPath        string  `toml:"db_path,omitempty"`
}

// Load reads the configuration at path over searchdrop.DefaultConfig.
// A missing file yields the defaults. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Load(path string) (*searchdrop.Config, error) {
	cfg := searchdrop.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "failed to parse config %s: %v", path, err)
	}

	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.StaticRoot != "" {
		cfg.StaticRoot = f.StaticRoot
	}
	if f.QuietInterval != "" {
		if cfg.QuietInterval, err = parseDuration("quiet_interval", f.QuietInterval); err != nil {
			return nil, err
		}
	}
	if f.Timeout != "" {
		if cfg.Timeout, err = parseDuration("timeout", f.Timeout); err != nil {
			return nil, err
		}
	}
	if f.RateLimit != 0 {
		cfg.RateLimit = f.RateLimit
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *searchdrop.Config) error {
	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Write encodes cfg as TOML to w.
func Write(w io.Writer, cfg *searchdrop.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	f := file{
		BaseURL:       cfg.BaseURL,
		StaticRoot:    cfg.StaticRoot,
		QuietInterval: cfg.QuietInterval.String(),
		RateLimit:     cfg.RateLimit,
		DBPath:        cfg.DBPath,
	}
	if cfg.Timeout > 0 {
		f.Timeout = cfg.Timeout.String()
	}

	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, searchdrop.Errorf(searchdrop.EINVALID, "invalid %s %q", key, value)
	}
	return d, nil
}
