package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docuri"
	"github.com/fwojciec/docuri/mock"
	dslog "github.com/fwojciec/docuri/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScanner_ScanArchive(t *testing.T) {
	t.Parallel()

	t.Run("logs flavor, entry count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArchiveScanner{
			ScanArchiveFn: func(_ context.Context, path string) (*docuri.ArchiveIndex, error) {
				return &docuri.ArchiveIndex{
					Archive: &docuri.Archive{Name: "foo-docs.jar", Path: path},
					Flavor:  docuri.FlavorJavadoc8,
					Entries: []string{"index.html", "com/foo/Bar.html"},
				}, nil
			},
		}

		scanner := dslog.NewLoggingScanner(inner, logger)
		idx, err := scanner.ScanArchive(context.Background(), "/lib/foo-docs.jar")

		require.NoError(t, err)
		assert.Equal(t, docuri.FlavorJavadoc8, idx.Flavor)
		output := buf.String()
		assert.Contains(t, output, "scan archive")
		assert.Contains(t, output, "path=/lib/foo-docs.jar")
		assert.Contains(t, output, "flavor=javadoc8")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArchiveScanner{
			ScanArchiveFn: func(context.Context, string) (*docuri.ArchiveIndex, error) {
				return nil, errors.New("zip: not a valid zip file")
			},
		}

		scanner := dslog.NewLoggingScanner(inner, logger)
		_, err := scanner.ScanArchive(context.Background(), "/lib/broken.jar")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "entries=0")
		assert.Contains(t, output, "err=\"zip: not a valid zip file\"")
	})
}
