// Package zip provides archive scanning and reading for documentation jars
// backed by klauspost/compress/zip.
package zip

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/docuri"
	"github.com/klauspost/compress/zip"
)

// Ensure Scanner implements docuri.ArchiveScanner at compile time.
var _ docuri.ArchiveScanner = (*Scanner)(nil)

// Scanner enumerates the entries of documentation jars and classifies their
// flavor from the top-level index document.
type Scanner struct {
	detector docuri.FlavorDetector
}

// NewScanner creates a new Scanner using detector to classify archives.
func NewScanner(detector docuri.FlavorDetector) *Scanner {
	return &Scanner{detector: detector}
}

// ScanArchive opens the archive at path and returns its index.
// The archive is closed before returning, also on failure.
func (s *Scanner) ScanArchive(ctx context.Context, path string) (*docuri.ArchiveIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer rc.Close()

	idx := &docuri.ArchiveIndex{
		Archive: &docuri.Archive{Name: filepath.Base(path), Path: path},
		Flavor:  docuri.FlavorScaladoc,
	}

	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		idx.Entries = append(idx.Entries, f.Name)

		if f.Name == docuri.IndexDocument {
			content, err := readFile(f)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", f.Name, err)
			}
			idx.Flavor = s.detector.DetectFlavor(content)
		}
	}

	return idx, nil
}

// Ensure Reader implements docuri.ArchiveReader at compile time.
var _ docuri.ArchiveReader = (*Reader)(nil)

// Reader reads single documents out of documentation jars. Archives are
// opened per call so no file handles outlive a read.
type Reader struct {
	// MaxEntrySize bounds the uncompressed size of a read entry.
	// Defaults to DefaultMaxEntrySize.
	MaxEntrySize int64
}

// DefaultMaxEntrySize is the default bound on documents returned by Reader.
const DefaultMaxEntrySize = 32 << 20

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{MaxEntrySize: DefaultMaxEntrySize}
}

// ReadEntry returns the contents of the entry at path in archive.
func (r *Reader) ReadEntry(ctx context.Context, archive *docuri.Archive, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := zip.OpenReader(archive.Path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer rc.Close()

	for _, f := range rc.File {
		if f.Name != path || f.FileInfo().IsDir() {
			continue
		}
		limit := r.MaxEntrySize
		if limit <= 0 {
			limit = DefaultMaxEntrySize
		}
		if f.UncompressedSize64 > uint64(limit) {
			return nil, docuri.Errorf(docuri.EINVALID, "entry %q exceeds %d bytes", path, limit)
		}
		return readFile(f)
	}

	return nil, docuri.Errorf(docuri.ENOTFOUND, "entry %q not found in %s", path, archive.Name)
}

func readFile(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
