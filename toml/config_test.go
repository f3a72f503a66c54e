package toml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/searchdrop"
	sdtoml "github.com/fwojciec/searchdrop/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		t.Parallel()

		cfg, err := sdtoml.Load(filepath.Join(t.TempDir(), "missing.toml"))

		require.NoError(t, err)
		assert.Equal(t, searchdrop.DefaultConfig(), cfg)
	})

	t.Run("overrides defaults with file values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
base_url = "https://news.example.com"
quiet_interval = "150ms"
timeout = "5s"
rate_limit = 2.5
db_path = "/tmp/searches.db"
`)

		cfg, err := sdtoml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://news.example.com", cfg.BaseURL)
		assert.Equal(t, searchdrop.DefaultStaticRoot, cfg.StaticRoot)
		assert.Equal(t, 150*time.Millisecond, cfg.QuietInterval)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.InDelta(t, 2.5, cfg.RateLimit, 0.0001)
		assert.Equal(t, "/tmp/searches.db", cfg.DBPath)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `quiet_intreval = "150ms"`)

		_, err := sdtoml.Load(path)

		require.Error(t, err)
		assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `quiet_interval = "soon"`)

		_, err := sdtoml.Load(path)

		require.Error(t, err)
		assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
		assert.Contains(t, searchdrop.ErrorMessage(err), "quiet_interval")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `base_url = "localhost"`)

		_, err := sdtoml.Load(path)

		require.Error(t, err)
		assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
	})

	t.Run("rejects invalid syntax", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `base_url = `)

		_, err := sdtoml.Load(path)

		require.Error(t, err)
		assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
	})
}

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("writes a file Load reads back", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "config.toml")
		cfg := searchdrop.DefaultConfig()
		cfg.BaseURL = "https://news.example.com"
		cfg.Timeout = 2 * time.Second
		cfg.DBPath = "searches.db"

		require.NoError(t, sdtoml.Save(path, cfg))

		got, err := sdtoml.Load(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("writes durations as strings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, sdtoml.Save(path, searchdrop.DefaultConfig()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Regexp(t, `quiet_interval = ['"]300ms['"]`, string(data))
		assert.NotContains(t, string(data), "timeout")
	})

	t.Run("refuses invalid config", func(t *testing.T) {
		t.Parallel()

		cfg := searchdrop.DefaultConfig()
		cfg.QuietInterval = 0

		err := sdtoml.Save(filepath.Join(t.TempDir(), "config.toml"), cfg)

		require.Error(t, err)
		assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
	})
}
