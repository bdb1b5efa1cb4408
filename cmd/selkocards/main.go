package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/selkocards"
	"github.com/fwojciec/selkocards/goquery"
	selkohttp "github.com/fwojciec/selkocards/http"
	"github.com/fwojciec/selkocards/lingua"
	selkoslog "github.com/fwojciec/selkocards/slog"
	"github.com/fwojciec/selkocards/yaml"
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
	// Now returns the export time. Set before calling Run() to pin dates.
	Now func() time.Time

	// NewDetector builds the language detector for an export. It runs
	// only for commands that generate cards.
	NewDetector func(pair selkocards.LanguagePair) (selkocards.LanguageDetector, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now:         time.Now,
		NewDetector: newLinguaDetector,
	}
}

func newLinguaDetector(pair selkocards.LanguagePair) (selkocards.LanguageDetector, error) {
	detector, err := lingua.NewDetector(pair.Primary, pair.Secondary)
	if err != nil {
		return nil, err
	}
	return detector, nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("selkocards"),
		kong.Description("Generate Anki flashcards from bilingual Selkouutiset articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'selkocards --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg

	var fetcher selkocards.Fetcher = selkohttp.NewFetcher(selkohttp.WithTimeout(cli.Timeout))
	if cli.Rate > 0 {
		fetcher = selkohttp.NewLimitedFetcher(fetcher, cli.Rate)
	}
	fetcher = selkohttp.NewRetryFetcher(fetcher, selkohttp.RetryDelays(cli.Retries), deps.Logger)
	deps.Fetcher = selkoslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer deps.Fetcher.Close()
	deps.Parser = selkoslog.NewLoggingParser(goquery.NewParser(), deps.Logger)

	if cli.Detect {
		deps.NewDetector = m.NewDetector
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the config file if one is found, otherwise the defaults.
func loadConfig(explicit string) (selkocards.Config, error) {
	path := yaml.FindConfig(explicit)
	if path == "" {
		if explicit != "" {
			return selkocards.Config{}, fmt.Errorf("config file %q: %w", explicit, yaml.ErrConfigNotFound)
		}
		return selkocards.DefaultConfig(), nil
	}
	cfg, err := yaml.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}
