package main

import (
	"fmt"
	"html"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/selkocards"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	rows, err := selkocards.ParseTSV(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d cards\n", len(rows))
	if len(rows) > 0 {
		fmt.Fprintf(deps.Stdout, "tags: %s\n", rows[0].Tags)
	}
	for i, row := range rows {
		if i == c.Limit {
			break
		}
		front := html.UnescapeString(strings.ReplaceAll(row.Front, selkocards.BreakMarker, " "))
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, truncate(front, 80))
	}

	return nil
}

// truncate shortens s to at most maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
