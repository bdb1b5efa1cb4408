package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/selkocards"
)

// LogDiagnostics replays export diagnostics as log records, warnings at
// warn level and everything else at info level.
func LogDiagnostics(ctx context.Context, logger *slog.Logger, diags selkocards.Diagnostics) {
	for i, d := range diags {
		level := slog.LevelInfo
		if d.Level == selkocards.LevelWarn {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, d.Message, "seq", i+1)
	}
}

// LogDeck logs a one-line summary of an export followed by its diagnostics.
func LogDeck(ctx context.Context, logger *slog.Logger, deck *selkocards.Deck) {
	LogDiagnostics(ctx, logger, deck.Diagnostics)
	logger.Info("deck generated",
		"granularity", string(deck.Granularity),
		"pair", deck.Pair.Code(),
		"current", string(deck.Current),
		"cards", len(deck.Cards),
		"unpaired", deck.Unpaired,
		"skipped", deck.Skipped,
		"warnings", len(deck.Diagnostics.Warnings()),
	)
}
