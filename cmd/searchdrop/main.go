package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/searchdrop"
	"github.com/fwojciec/searchdrop/fs"
	"github.com/fwojciec/searchdrop/htmltomarkdown"
	sdhttp "github.com/fwojciec/searchdrop/http"
	"github.com/fwojciec/searchdrop/readability"
	"github.com/fwojciec/searchdrop/rod"
	sdslog "github.com/fwojciec/searchdrop/slog"
	"github.com/fwojciec/searchdrop/sqlite"
	"github.com/fwojciec/searchdrop/toml"
	"github.com/fwojciec/searchdrop/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default paths. Set before calling Run(); flags, environment, and the
	// config file take precedence.
	ConfigPath string
	DBPath     string
	LogPath    string
	PagesDir   string

	// Stdin feeds the terminal UI and "render -".
	Stdin io.Reader

	// SQLite database backing the search log.
	DB *sqlite.DB

	logFile *os.File
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	dir := dataDir()
	return &Main{
		ConfigPath: filepath.Join(dir, "config.toml"),
		DBPath:     filepath.Join(dir, "searchdrop.db"),
		LogPath:    filepath.Join(dir, "searchdrop.log"),
		PagesDir:   filepath.Join(dir, "pages"),
		Stdin:      os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.DB != nil {
		err = m.DB.Close()
	}
	if m.logFile != nil {
		if cerr := m.logFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("searchdrop"),
		kong.Description("Search the village news site as you type"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'searchdrop --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.ConfigFile != "" {
		m.ConfigPath = cli.ConfigFile
	}
	cfg, err := toml.Load(m.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set SEARCHDROP_CONFIG to use a different config file")
		return fmt.Errorf("failed to load config %q: %w", m.ConfigPath, err)
	}
	if cli.BaseURL != "" {
		cfg.BaseURL = cli.BaseURL
	}
	if cli.Timeout > 0 {
		cfg.Timeout = cli.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg
	deps.ConfigPath = m.ConfigPath

	logger, err := m.newLogger(cmd == "tui", cli.Debug, stderr)
	if err != nil {
		return err
	}
	defer m.Close()
	deps.Logger = logger

	switch cmd {
	case "tui", "query", "render":
		var opts []sdhttp.SearcherOption
		if cfg.Timeout > 0 {
			opts = append(opts, sdhttp.WithSearchTimeout(cfg.Timeout))
		}
		if cfg.RateLimit > 0 {
			opts = append(opts, sdhttp.WithRateLimit(cfg.RateLimit))
		}
		deps.Searcher = sdslog.NewLoggingSearcher(sdhttp.NewSearcher(cfg.BaseURL, opts...), logger)
		deps.Inliner = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cfg.BaseURL))
	}

	switch cmd {
	case "tui", "query", "log":
		path := m.DBPath
		if cfg.DBPath != "" {
			path = cfg.DBPath
		}
		if cli.DB != "" {
			path = cli.DB
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set SEARCHDROP_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		deps.SearchLog = sdslog.NewLoggingSearchLog(sqlite.NewSearchLog(m.DB), logger)
	}

	if cmd == "tui" {
		var fetcher searchdrop.Fetcher = sdhttp.NewFetcher(sdhttp.WithTimeout(readTimeout))
		if cli.Tui.Browser {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(readTimeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		}
		fetcher = sdslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		reader, err := NewReader(cfg.BaseURL, fetcher, newExtractor,
			htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cfg.BaseURL)))
		if err != nil {
			return err
		}
		deps.Reader = reader

		saveDir := cli.Tui.SaveDir
		if saveDir == "" {
			saveDir = m.PagesDir
		}
		deps.Saver = fs.NewWriter(saveDir)
	}

	return kongCtx.Run(deps)
}

// newExtractor prefers trafilatura and falls back to readability when it
// finds no content.
func newExtractor(pageURL *url.URL) searchdrop.Extractor {
	return &FallbackExtractor{
		Primary:  trafilatura.NewExtractor(trafilatura.WithPageURL(pageURL)),
		Fallback: readability.NewExtractor(readability.WithPageURL(pageURL)),
	}
}

// newLogger logs to a file for the terminal UI, which owns the screen,
// and to stderr otherwise.
func (m *Main) newLogger(toFile, debug bool, stderr io.Writer) (*slog.Logger, error) {
	level := slog.LevelWarn
	w := stderr
	if toFile {
		if err := os.MkdirAll(filepath.Dir(m.LogPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(m.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", m.LogPath, err)
		}
		m.logFile = f
		level = slog.LevelInfo
		w = f
	}
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".searchdrop")
}
