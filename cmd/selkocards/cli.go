package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/selkocards"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Config  selkocards.Config
	Fetcher selkocards.Fetcher
	Parser  selkocards.PageParser

	// NewDetector is nil when language detection is off.
	NewDetector func(pair selkocards.LanguagePair) (selkocards.LanguageDetector, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string        `short:"C" type:"path" env:"SELKOCARDS_CONFIG" help:"Config file (default: ./.selkocards.yaml or ~/.selkocards.yaml)"`
	Verbose bool          `short:"v" help:"Log alignment diagnostics and fetches"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retries int           `default:"2" help:"Retries for transient fetch failures"`
	Rate    float64       `default:"2" help:"Maximum requests per second to the archive host"`
	Detect  bool          `default:"true" negatable:"" help:"Check article languages with a language detector"`

	Sentence  SentenceCmd  `cmd:"" help:"One card per sentence pair"`
	Paragraph ParagraphCmd `cmd:"" help:"One card per paragraph pair"`
	Section   SectionCmd   `cmd:"" help:"One card per heading-delimited section pair"`
	Generate  GenerateCmd  `cmd:"" help:"Generate cards at a named level (sentence, paragraph, section)"`
	Inspect   InspectCmd   `cmd:"" help:"Summarize an exported deck file"`
}

// ExportFlags are shared by every card generating command.
type ExportFlags struct {
	URL    string `arg:"" help:"Article page URL"`
	File   string `short:"f" type:"existingfile" help:"Read the article page from a local HTML file instead of fetching the URL"`
	Out    string `short:"o" help:"Output directory (default from config)"`
	Front  string `help:"Language on the card front (default from config)"`
	Back   string `help:"Language on the card back (default from config)"`
	Plain  bool   `help:"Put only the translation on the card back, without styling"`
	Stdout bool   `help:"Write the deck to stdout instead of a file"`
}

// SentenceCmd is the "sentence" subcommand.
type SentenceCmd struct {
	ExportFlags `embed:""`
}

// ParagraphCmd is the "paragraph" subcommand.
type ParagraphCmd struct {
	ExportFlags `embed:""`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	ExportFlags `embed:""`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Level string `arg:"" help:"Card level: sentence, paragraph or section"`
	ExportFlags `embed:""`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Path  string `arg:"" type:"existingfile" help:"Exported deck file"`
	Limit int    `short:"n" default:"5" help:"Number of rows to preview"`
}
