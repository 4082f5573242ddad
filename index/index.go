// Package index builds documentation catalogs from archive files.
package index

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fwojciec/docuri"
)

// Indexer scans documentation archives into a docuri.Catalog.
type Indexer struct {
	Scanner docuri.ArchiveScanner

	// Logger receives per-archive failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Index scans paths in order and returns the resulting catalog. Paths that
// do not exist are skipped silently. Archives that cannot be read are logged
// and skipped; they never abort the scan. When archives share an entry path
// the one scanned last wins. Only context cancellation returns an error.
func (ix *Indexer) Index(ctx context.Context, paths []string) (*docuri.Catalog, error) {
	logger := ix.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := docuri.NewCatalogBuilder()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("archive missing", "path", path)
			continue
		} else if err != nil {
			logger.Warn("archive unreadable", "path", path, "err", err)
			continue
		}

		idx, err := ix.Scanner.ScanArchive(ctx, path)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		} else if err != nil {
			logger.Warn("archive unreadable", "path", path, "err", err)
			continue
		}

		b.Add(idx)
	}

	return b.Build(), nil
}
