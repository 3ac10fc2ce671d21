// Package slog provides logging decorators for patentdump services.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/patentdump"
)

// Ensure LoggingFetcher implements patentdump.Fetcher.
var _ patentdump.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   patentdump.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next patentdump.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size and body hash.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *patentdump.RawPage, err error) {
	defer func(begin time.Time) {
		var size int
		var hash string
		if page != nil {
			size = len(page.Body)
			hash = fmt.Sprintf("%016x", xxhash.Sum64(page.Body))
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", size,
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
