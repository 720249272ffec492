package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/check"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/fwojciec/htmlcheck/goquery"
	checkhttp "github.com/fwojciec/htmlcheck/http"
	"github.com/fwojciec/htmlcheck/json5"
	"github.com/fwojciec/htmlcheck/retry"
	"github.com/fwojciec/htmlcheck/rod"
	checkslog "github.com/fwojciec/htmlcheck/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, FormatError(err))
		stop()
		os.Exit(1)
	}
}

// FormatError returns the line reported to the user for err.
func FormatError(err error) string {
	if htmlcheck.ErrorCode(err) == htmlcheck.EINTERNAL {
		return "error: " + err.Error()
	}
	return "error: " + htmlcheck.ErrorMessage(err)
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	// Kong calls Exit after printing help; stop there instead of checking.
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("htmlcheck"),
		kong.Description("Check an HTML file or URL for elements matching CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	src, err := cli.Source()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	var parserSvc htmlcheck.Parser = goquery.NewParser()
	if cli.Verbose {
		parserSvc = checkslog.NewLoggingParser(parserSvc, logger)
	}

	checker := &check.Checker{
		FileSystem: fs.NewFileSystem(),
		Parser:     parserSvc,
		Loaders:    map[string]check.LoadFunc{json5.Ext: json5.LoadChecks},
	}

	if src.Kind == htmlcheck.SourceURL {
		var fetcher htmlcheck.Fetcher
		if cli.Render {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = checkhttp.NewFetcher(checkhttp.WithTimeout(cli.Timeout))
		}
		if cli.Verbose {
			fetcher = checkslog.NewLoggingFetcher(fetcher, logger)
		}
		fetcher = retry.NewFetcher(fetcher, retry.NewPolicy(cli.Retries, cli.RetryDelay), logger)
		defer fetcher.Close()

		checker.Fetcher = fetcher
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Checker: checker,
	}

	cmd := &CheckCmd{
		Source:     src,
		ChecksPath: cli.Checks,
		Format:     cli.Format,
	}

	return cmd.Run(deps)
}
