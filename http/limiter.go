package http

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/selkocards"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the per-host request rate used by the CLI.
const DefaultRequestsPerSecond = 2.0

var _ selkocards.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher spaces requests to the same host with a token bucket per
// host. Requests to different hosts do not wait on each other.
type LimitedFetcher struct {
	next selkocards.Fetcher
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLimitedFetcher wraps next, allowing rps requests per second per host
// with no bursting.
func NewLimitedFetcher(next selkocards.Fetcher, rps float64) *LimitedFetcher {
	return &LimitedFetcher{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch waits for the host's limiter, then delegates to the wrapped fetcher.
// Returns the context error if ctx ends while waiting.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", selkocards.Errorf(selkocards.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if err := f.limiter(u.Host).Wait(ctx); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}

func (f *LimitedFetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = limiter
	}
	return limiter
}
