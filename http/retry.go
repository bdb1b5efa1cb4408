package http

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/selkocards"
)

// DefaultRetries is the number of retries made by the CLI.
const DefaultRetries = 2

// RetryDelays returns n exponential backoff delays starting at one second:
// 1s, 2s, 4s and so on.
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := 0; i < n; i++ {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

var _ selkocards.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries transport failures with backoff. HTTP status errors,
// missing pages and invalid URLs are returned immediately.
type RetryFetcher struct {
	next   selkocards.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. One retry is made per entry in delays; a nil
// logger disables retry logging.
func NewRetryFetcher(next selkocards.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch delegates to the wrapped fetcher, retrying transport failures.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(f.delays) || !retryable(err) {
			break
		}

		if f.logger != nil {
			f.logger.Warn("retry fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return false
	}
	return selkocards.ErrorCode(err) == selkocards.EINTERNAL
}
