package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/searchdrop"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     *searchdrop.Config
	ConfigPath string
	Searcher   searchdrop.Searcher
	SearchLog  searchdrop.SearchLog
	Reader     searchdrop.PageReader
	Saver      searchdrop.PageSaver
	Inliner    searchdrop.Inliner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ConfigFile string        `name:"config" help:"Config file path" type:"path" env:"SEARCHDROP_CONFIG"`
	DB         string        `name:"db" help:"Search log database path" type:"path" env:"SEARCHDROP_DB"`
	BaseURL    string        `name:"base-url" help:"Site origin serving /api/search"`
	Timeout    time.Duration `help:"Search request timeout (default none)"`
	Debug      bool          `help:"Log debug details"`

	Tui      TuiCmd      `cmd:"" help:"Search interactively with a live results dropdown"`
	Query    QueryCmd    `cmd:"" help:"Search once and print the dropdown listing"`
	Render   RenderCmd   `cmd:"" help:"Search and write an HTML page with its dropdown filled in"`
	Log      LogCmd      `cmd:"" help:"Show recorded searches"`
	Validate ValidateCmd `cmd:"" help:"Validate article and comment form input"`
	Config   ConfigCmd   `cmd:"" help:"Print the effective configuration"`
}

// TuiCmd is the "tui" subcommand.
type TuiCmd struct {
	Browser bool   `help:"Render pages with headless Chrome in the reader view"`
	SaveDir string `name:"save-dir" help:"Directory for pages saved from the reader view" type:"path"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Text string `arg:"" help:"Search text"`
	HTML bool   `name:"html" help:"Print dropdown markup instead of text"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Page  string `arg:"" help:"HTML page containing the search input and dropdown ('-' for stdin)"`
	Query string `arg:"" help:"Search text"`
}

// LogCmd is the "log" subcommand.
type LogCmd struct {
	Query  string `help:"Only show searches for this query"`
	Failed bool   `help:"Only show failed searches"`
	Limit  int    `short:"n" default:"20" help:"Maximum entries to show"`
	Offset int    `help:"Entries to skip"`
}

// ValidateCmd groups the form validation subcommands.
type ValidateCmd struct {
	Article ValidateArticleCmd `cmd:"" help:"Validate an article submission"`
	Comment ValidateCommentCmd `cmd:"" help:"Validate a comment"`
}

// ValidateArticleCmd is the "validate article" subcommand.
type ValidateArticleCmd struct {
	Title       string `help:"Article title"`
	Description string `help:"Article description"`
	State       string `help:"State"`
	District    string `help:"District"`
	Village     string `help:"Village"`
	Image       string `help:"Image path"`
}

// ValidateCommentCmd is the "validate comment" subcommand.
type ValidateCommentCmd struct {
	Body string `arg:"" optional:"" help:"Comment text"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct {
	Write bool `help:"Save the effective configuration to the config file"`
}
