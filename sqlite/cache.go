package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docuri"
	"github.com/google/uuid"
)

// Ensure ScanCache implements docuri.ArchiveScanner at compile time.
var _ docuri.ArchiveScanner = (*ScanCache)(nil)

// ScanCache wraps an ArchiveScanner and stores its results in SQLite.
// An archive is rescanned only when its content fingerprint changes.
// Cache failures never fail a scan; they are logged and the wrapped
// scanner's result is returned.
type ScanCache struct {
	db     *DB
	next   docuri.ArchiveScanner
	logger *slog.Logger
}

// NewScanCache creates a new ScanCache. A nil logger uses slog.Default().
func NewScanCache(db *DB, next docuri.ArchiveScanner, logger *slog.Logger) *ScanCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanCache{db: db, next: next, logger: logger}
}

// ScanArchive returns the stored index for path when its fingerprint is
// unchanged, scanning and storing it otherwise.
func (s *ScanCache) ScanArchive(ctx context.Context, path string) (*docuri.ArchiveIndex, error) {
	fp, err := Fingerprint(path)
	if err != nil {
		return nil, fmt.Errorf("fingerprint archive: %w", err)
	}

	idx, err := s.FindArchiveIndex(ctx, path, fp)
	if err == nil {
		return idx, nil
	} else if docuri.ErrorCode(err) != docuri.ENOTFOUND {
		s.logger.Warn("scan cache read failed", "path", path, "err", err)
	}

	idx, err = s.next.ScanArchive(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := s.SaveArchiveIndex(ctx, idx, fp); err != nil {
		s.logger.Warn("scan cache write failed", "path", path, "err", err)
	}
	return idx, nil
}

// FindArchiveIndex returns the stored index for the archive at path.
// Returns ENOTFOUND if nothing is stored for path or the stored
// fingerprint differs from fp.
func (s *ScanCache) FindArchiveIndex(ctx context.Context, path, fp string) (*docuri.ArchiveIndex, error) {
	var id, name, flavor, storedFP, indexedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, flavor, fingerprint, indexed_at
		FROM archives
		WHERE path = ?
	`, path).Scan(&id, &name, &flavor, &storedFP, &indexedAt)

	if err == sql.ErrNoRows {
		return nil, docuri.Errorf(docuri.ENOTFOUND, "archive %q not cached", path)
	}
	if err != nil {
		return nil, err
	}
	if storedFP != fp {
		return nil, docuri.Errorf(docuri.ENOTFOUND, "archive %q changed since %s", path, indexedAt)
	}
	if _, err := parseRFC3339(indexedAt, "indexed_at"); err != nil {
		return nil, err
	}

	idx := &docuri.ArchiveIndex{Archive: &docuri.Archive{Name: name, Path: path}}
	if idx.Flavor, err = docuri.ParseFlavor(flavor); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT path FROM entries WHERE archive_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return nil, err
		}
		idx.Entries = append(idx.Entries, entry)
	}

	return idx, rows.Err()
}

// SaveArchiveIndex stores idx under fingerprint fp, replacing any
// previous record for the same archive path.
func (s *ScanCache) SaveArchiveIndex(ctx context.Context, idx *docuri.ArchiveIndex, fp string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM entries WHERE archive_id IN (SELECT id FROM archives WHERE path = ?)
	`, idx.Archive.Path); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM archives WHERE path = ?`, idx.Archive.Path); err != nil {
		return err
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO archives (id, path, name, flavor, fingerprint, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, idx.Archive.Path, idx.Archive.Name, string(idx.Flavor), fp,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO entries (archive_id, path) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range idx.Entries {
		if _, err := stmt.ExecContext(ctx, id, entry); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Fingerprint returns the xxhash of the file at path as a hex string.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
