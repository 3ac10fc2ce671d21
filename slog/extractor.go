package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/patentdump"
)

// Ensure LoggingExtractor implements patentdump.Extractor.
var _ patentdump.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   patentdump.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next patentdump.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(page *patentdump.RawPage) (result *patentdump.ExtractResult, err error) {
	defer func(begin time.Time) {
		var url string
		if page != nil {
			url = page.URL
		}
		var title string
		var claims int
		if result != nil {
			title = result.Title
			claims = len(result.Claims)
		}
		e.logger.Info("extract",
			"url", url,
			"title", title,
			"claims", claims,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}
