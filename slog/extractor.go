package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingExtractor implements pagemeta.MetadataExtractor.
var _ pagemeta.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with debug logging.
type LoggingExtractor struct {
	next   pagemeta.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemeta.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(r io.Reader, contentType, pageURL string) (metadata pagemeta.Metadata, err error) {
	defer func(begin time.Time) {
		e.logger.Info("metadata extraction",
			"url", pageURL,
			"content_type", contentType,
			"fields", found(metadata),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(r, contentType, pageURL)
}

// FieldErrorHandler returns a callback for pagemeta.WithFieldErrorHandler
// that logs each failed field at warn level.
func FieldErrorHandler(logger *slog.Logger) func(field string, err error) {
	return func(field string, err error) {
		logger.Warn("field extraction failed",
			"field", field,
			"err", err,
		)
	}
}

// found counts the fields that produced a value.
func found(m pagemeta.Metadata) int {
	n := 0
	for field := range m {
		if m.Has(field) {
			n++
		}
	}
	return n
}
