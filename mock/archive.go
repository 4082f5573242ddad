package mock

import (
	"context"

	"github.com/fwojciec/docuri"
)

var _ docuri.ArchiveScanner = (*ArchiveScanner)(nil)

// ArchiveScanner is a mock implementation of docuri.ArchiveScanner.
type ArchiveScanner struct {
	ScanArchiveFn func(ctx context.Context, path string) (*docuri.ArchiveIndex, error)
}

func (s *ArchiveScanner) ScanArchive(ctx context.Context, path string) (*docuri.ArchiveIndex, error) {
	return s.ScanArchiveFn(ctx, path)
}

var _ docuri.ArchiveReader = (*ArchiveReader)(nil)

// ArchiveReader is a mock implementation of docuri.ArchiveReader.
type ArchiveReader struct {
	ReadEntryFn func(ctx context.Context, archive *docuri.Archive, path string) ([]byte, error)
}

func (r *ArchiveReader) ReadEntry(ctx context.Context, archive *docuri.Archive, path string) ([]byte, error) {
	return r.ReadEntryFn(ctx, archive, path)
}

var _ docuri.FlavorDetector = (*FlavorDetector)(nil)

// FlavorDetector is a mock implementation of docuri.FlavorDetector.
type FlavorDetector struct {
	DetectFlavorFn func(indexHTML []byte) docuri.Flavor
}

func (d *FlavorDetector) DetectFlavor(indexHTML []byte) docuri.Flavor {
	return d.DetectFlavorFn(indexHTML)
}
