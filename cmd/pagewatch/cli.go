package main

import (
	"context"
	"io"
	"time"

	"github.com/pagewatch/pagewatch"
	"github.com/pagewatch/pagewatch/monitor"
	"github.com/pagewatch/pagewatch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Users     pagewatch.UserService
	Pages     pagewatch.PageService
	Versions  pagewatch.VersionService
	Changes   pagewatch.ChangeService
	Fetcher   pagewatch.Fetcher
	Extractor pagewatch.Extractor
	Differ    pagewatch.Differ
	Scheduler *monitor.Scheduler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Database path (defaults to ~/.pagewatch/pagewatch.db)" env:"PAGEWATCH_DB"`

	Add      AddCmd      `cmd:"" help:"Track a new page for content changes"`
	List     ListCmd     `cmd:"" help:"List tracked pages"`
	Remove   RemoveCmd   `cmd:"" help:"Remove a tracked page and its history"`
	Pause    PauseCmd    `cmd:"" help:"Pause monitoring for a page"`
	Resume   ResumeCmd   `cmd:"" help:"Resume monitoring for a page"`
	Versions VersionsCmd `cmd:"" help:"List captured versions of a page"`
	Changes  ChangesCmd  `cmd:"" help:"List detected changes"`
	Diff     DiffCmd     `cmd:"" help:"Show the diff between the two most recent versions of a page"`
	Check    CheckCmd    `cmd:"" help:"Fetch and extract a URL once without storing anything"`
	Watch    WatchCmd    `cmd:"" help:"Run the monitoring scheduler until interrupted"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URL      string        `arg:"" help:"Page URL to track"`
	Owner    string        `short:"o" required:"" help:"Owner email (registered on first use)"`
	Name     string        `short:"n" help:"Display name (defaults to URL)"`
	Interval time.Duration `short:"i" default:"24h" help:"Check interval"`
	NoAlerts bool          `help:"Disable email alerts when registering a new owner"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Owner string `short:"o" help:"Filter by owner email"`
	All   bool   `short:"a" help:"Include paused pages"`
}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	ID    string `arg:"" help:"Page ID"`
	Force bool   `help:"Confirm deletion"`
}

// PauseCmd is the "pause" subcommand.
type PauseCmd struct {
	ID string `arg:"" help:"Page ID"`
}

// ResumeCmd is the "resume" subcommand.
type ResumeCmd struct {
	ID string `arg:"" help:"Page ID"`
}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct {
	ID    string `arg:"" help:"Page ID"`
	Limit int    `short:"l" default:"10" help:"Maximum versions to show (0 for all)"`
	Full  bool   `help:"Show full extracted text"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	ID string `arg:"" help:"Page ID"`
}

// ChangesCmd is the "changes" subcommand.
type ChangesCmd struct {
	Page  string `short:"p" help:"Filter by page ID"`
	Owner string `short:"o" help:"Filter by owner email"`
	Limit int    `short:"l" default:"20" help:"Maximum changes to show (0 for all)"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL       string `arg:"" help:"URL to fetch and extract"`
	Extractor string `short:"e" default:"goquery" enum:"goquery,trafilatura,readability" help:"Extraction strategy"`
	Render    bool   `short:"r" help:"Render JavaScript with headless Chrome"`
	Full      bool   `help:"Print the full extracted text"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Tick         time.Duration `short:"t" default:"60s" help:"Due-scan interval"`
	Concurrency  int           `short:"c" default:"5" help:"Concurrent page check limit"`
	Extractor    string        `short:"e" default:"goquery" enum:"goquery,trafilatura,readability" help:"Extraction strategy"`
	Render       bool          `short:"r" help:"Render JavaScript with headless Chrome"`
	Archive      string        `help:"Directory for raw HTML snapshots (disabled when empty)"`
	DispatchRate float64       `help:"Maximum page checks launched per second (0 for unlimited)"`
	Once         bool          `help:"Run a single due-scan cycle and exit"`
}
