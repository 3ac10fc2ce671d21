package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/patentdump"
)

// Ensure LoggingWriter implements patentdump.PatentWriter.
var _ patentdump.PatentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a PatentWriter with logging.
type LoggingWriter struct {
	next   patentdump.PatentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next patentdump.PatentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WritePatent delegates to the wrapped writer and logs the destination.
func (w *LoggingWriter) WritePatent(ctx context.Context, rec *patentdump.PatentRecord) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"publication_number", rec.PublicationNumber,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePatent(ctx, rec)
}
