package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pagewatch/pagewatch"
	"github.com/pagewatch/pagewatch/difflib"
	"github.com/pagewatch/pagewatch/fs"
	"github.com/pagewatch/pagewatch/goquery"
	pwhttp "github.com/pagewatch/pagewatch/http"
	"github.com/pagewatch/pagewatch/monitor"
	"github.com/pagewatch/pagewatch/readability"
	"github.com/pagewatch/pagewatch/rod"
	pwslog "github.com/pagewatch/pagewatch/slog"
	"github.com/pagewatch/pagewatch/sqlite"
	"github.com/pagewatch/pagewatch/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	UserService    pagewatch.UserService
	PageService    pagewatch.PageService
	VersionService pagewatch.VersionService
	ChangeService  pagewatch.ChangeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagewatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagewatch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parse result, not the raw args:
	// global flags such as --db may precede the subcommand.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEWATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.UserService = sqlite.NewUserService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	m.VersionService = sqlite.NewVersionService(m.DB)
	m.ChangeService = sqlite.NewChangeService(m.DB)
	deps.DB = m.DB
	deps.Users = m.UserService
	deps.Pages = m.PageService
	deps.Versions = m.VersionService
	deps.Changes = m.ChangeService
	deps.Differ = difflib.NewDiffer()

	logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))

	if cmd == "check" || cmd == "watch" {
		render := cli.Check.Render
		extractorName := cli.Check.Extractor
		if cmd == "watch" {
			render = cli.Watch.Render
			extractorName = cli.Watch.Extractor
		}

		fetcher, err := newFetcher(render)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to create fetcher: %w", err)
		}
		defer fetcher.Close()

		deps.Fetcher = pwslog.NewLoggingFetcher(fetcher, logger)
		deps.Extractor = newExtractor(extractorName)
	}

	if cmd == "watch" {
		deps.Scheduler = &monitor.Scheduler{
			Pages:        deps.Pages,
			Versions:     deps.Versions,
			Changes:      deps.Changes,
			Users:        deps.Users,
			Fetcher:      deps.Fetcher,
			Extractor:    deps.Extractor,
			Differ:       deps.Differ,
			Notifier:     pwslog.NewNotifier(logger),
			TickInterval: cli.Watch.Tick,
			Concurrency:  cli.Watch.Concurrency,
			DispatchRate: cli.Watch.DispatchRate,
			Logger:       logger,
		}
		if cli.Watch.Archive != "" {
			deps.Scheduler.Archiver = fs.NewArchive(cli.Watch.Archive)
		}
	}

	return kongCtx.Run(deps)
}

func newFetcher(render bool) (pagewatch.Fetcher, error) {
	if render {
		return rod.NewFetcher()
	}
	return pwhttp.NewFetcher(), nil
}

func newExtractor(name string) pagewatch.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEWATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagewatch.db"
	}
	dir := filepath.Join(home, ".pagewatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagewatch.db")
}
