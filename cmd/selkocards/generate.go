package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/fwojciec/selkocards"
	"github.com/fwojciec/selkocards/fs"
	selkoslog "github.com/fwojciec/selkocards/slog"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Run executes the sentence command.
func (c *SentenceCmd) Run(deps *Dependencies) error {
	return c.export(deps, selkocards.GranularitySentence)
}

// Run executes the paragraph command.
func (c *ParagraphCmd) Run(deps *Dependencies) error {
	return c.export(deps, selkocards.GranularityParagraph)
}

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	return c.export(deps, selkocards.GranularitySection)
}

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	level, err := selkocards.ParseGranularity(c.Level)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", selkocards.ErrorMessage(err))
		return err
	}
	return c.export(deps, level)
}

// config applies command-line overrides to the loaded configuration.
func (f *ExportFlags) config(base selkocards.Config) (selkocards.Config, error) {
	cfg := base
	if f.Front != "" {
		cfg.Pair.Primary = selkocards.ParseLanguage(f.Front)
	}
	if f.Back != "" {
		cfg.Pair.Secondary = selkocards.ParseLanguage(f.Back)
	}
	if f.Out != "" {
		cfg.OutputDir = f.Out
	}
	if f.Plain {
		cfg.Decorate = false
	}
	return cfg, cfg.Validate()
}

func (f *ExportFlags) export(deps *Dependencies, level selkocards.Granularity) error {
	cfg, err := f.config(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", selkocards.ErrorMessage(err))
		return err
	}

	// Status output goes to stderr when the deck itself goes to stdout.
	status := deps.Stdout
	if f.Stdout {
		status = deps.Stderr
	}

	var detector selkocards.LanguageDetector
	if deps.NewDetector != nil {
		if detector, err = deps.NewDetector(cfg.Pair); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", selkocards.ErrorMessage(err))
			fmt.Fprintln(deps.Stderr, "Hint: run with --no-detect to skip language detection")
			return err
		}
	}

	spinner := newSpinner(deps, "Generating Anki cards...")
	deck, err := f.generate(deps, cfg, detector, level)
	_ = spinner.Finish()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error generating Anki cards: %s\n", errorMessage(err))
		return err
	}

	selkoslog.LogDeck(deps.Ctx, deps.Logger, deck)

	if deck.Empty() {
		fmt.Fprintln(status, "No cards generated. The article might not have a translation or the content structure is incompatible.")
		return nil
	}

	payload := selkocards.NewTSVWriter(cfg).Format(deck)
	name := selkocards.Filename(deck.Metadata.Title, level, deck.Metadata.GeneratedDate)

	var exporter selkocards.Exporter = fs.NewExporter(cfg.OutputDir)
	if f.Stdout {
		exporter = fs.NewWriterExporter(deps.Stdout)
	}
	location, err := exporter.Export(deps.Ctx, name, payload)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing deck: %v\n", err)
		return err
	}

	printSummary(status, deck, location)
	return nil
}

// generate loads the current page and runs the pipeline.
func (f *ExportFlags) generate(deps *Dependencies, cfg selkocards.Config, detector selkocards.LanguageDetector, level selkocards.Granularity) (*selkocards.Deck, error) {
	var html string
	if f.File != "" {
		data, err := os.ReadFile(f.File)
		if err != nil {
			return nil, err
		}
		html = string(data)
	} else {
		var err error
		if html, err = deps.Fetcher.Fetch(deps.Ctx, f.URL); err != nil {
			return nil, err
		}
	}

	page, err := deps.Parser.Parse(html, f.URL)
	if err != nil {
		return nil, err
	}

	generator := selkocards.NewGenerator(cfg, deps.Fetcher, deps.Parser)
	generator.Detector = detector
	if deps.Now != nil {
		generator.Now = deps.Now
	}
	return generator.Generate(deps.Ctx, page, level)
}

// newSpinner returns a spinner on stderr, hidden unless stderr is a terminal.
func newSpinner(deps *Dependencies, description string) *progressbar.ProgressBar {
	visible := false
	if f, ok := deps.Stderr.(*os.File); ok {
		visible = isatty.IsTerminal(f.Fd())
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(deps.Stderr),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func printSummary(w io.Writer, deck *selkocards.Deck, location string) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Fprintf(w, "Generated %d cards!\n", len(deck.Cards))
	if location != "-" {
		fmt.Fprintf(w, "Saved to %s\n", location)
	}
	if deck.Skipped > 0 {
		yellow.Fprintf(w, "Paragraphs skipped due to alignment issues: %d\n", deck.Skipped)
	}
	if deck.Unpaired > 0 {
		yellow.Fprintf(w, "Units left unpaired: %d\n", deck.Unpaired)
	}
	if n := len(deck.Diagnostics.Warnings()); n > 0 {
		yellow.Fprintf(w, "Alignment warnings: %d\n", n)
	}

	fmt.Fprint(w, `
To import into Anki:
1. Open Anki
2. File → Import
3. Select the downloaded file
4. Set "Fields separated by: Tab"
5. Set "Allow HTML in fields"
6. Click Import
`)
}

// errorMessage prefers the application message and falls back to the raw
// error text for infrastructure failures.
func errorMessage(err error) string {
	if selkocards.ErrorCode(err) == selkocards.EINTERNAL {
		return err.Error()
	}
	return selkocards.ErrorMessage(err)
}
