// Package slog provides log/slog decorators for docuri services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docuri"
)

// Ensure LoggingScanner implements docuri.ArchiveScanner.
var _ docuri.ArchiveScanner = (*LoggingScanner)(nil)

// LoggingScanner wraps an ArchiveScanner with logging.
type LoggingScanner struct {
	next   docuri.ArchiveScanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next docuri.ArchiveScanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// ScanArchive delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) ScanArchive(ctx context.Context, path string) (idx *docuri.ArchiveIndex, err error) {
	defer func(begin time.Time) {
		var flavor docuri.Flavor
		var entries int
		if idx != nil {
			flavor, entries = idx.Flavor, len(idx.Entries)
		}
		s.logger.Info("scan archive",
			"path", path,
			"flavor", flavor,
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScanArchive(ctx, path)
}
