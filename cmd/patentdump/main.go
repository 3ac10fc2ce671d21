package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/patentdump"
	"github.com/fwojciec/patentdump/fs"
	"github.com/fwojciec/patentdump/goquery"
	pdhttp "github.com/fwojciec/patentdump/http"
	"github.com/fwojciec/patentdump/rod"
	pdslog "github.com/fwojciec/patentdump/slog"
	"github.com/fwojciec/patentdump/sqlite"
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
	// Stdin is read when no URL is given on the command line.
	Stdin io.Reader

	// SQLite catalog, opened only when a database path is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
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
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("patentdump"),
		kong.Description("Save a Google Patents page as a normalized JSON record"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"user_agent":      patentdump.DefaultUserAgent,
			"accept_language": patentdump.DefaultAcceptLanguage,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set PATENTDUMP_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Catalog = sqlite.NewCatalogService(m.DB)
	}

	if strings.HasPrefix(kongCtx.Command(), "fetch") {
		fetcher, err := newFetcher(&cli.Fetch)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Fetcher = pdslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Extractor = pdslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger)
		deps.Writer = pdslog.NewLoggingWriter(fs.NewWriter(cli.Fetch.Out), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the page fetcher selected by the fetch flags.
func newFetcher(c *FetchCmd) (patentdump.Fetcher, error) {
	if c.Browser {
		return rod.NewFetcher(
			rod.WithFetchTimeout(c.Timeout),
			rod.WithUserAgent(c.UserAgent),
			rod.WithAcceptLanguage(c.AcceptLanguage),
		)
	}
	return pdhttp.NewFetcher(
		pdhttp.WithTimeout(c.Timeout),
		pdhttp.WithUserAgent(c.UserAgent),
		pdhttp.WithAcceptLanguage(c.AcceptLanguage),
	), nil
}

// newLogger returns a text logger on w. Progress is only shown when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
