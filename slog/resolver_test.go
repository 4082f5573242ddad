package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/docuri"
	"github.com/fwojciec/docuri/mock"
	dslog "github.com/fwojciec/docuri/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved uri at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Resolver{
			ResolveFn: func(docuri.SignaturePair) (string, bool) {
				return "docs/foo-docs.jar/com/foo/Bar.html#baz", true
			},
		}

		r := dslog.NewLoggingResolver(inner, logger)
		uri, ok := docuri.ResolveSignature(r, docuri.Signature{Package: "com.foo", Type: "Bar", Member: "baz"})

		assert.True(t, ok)
		assert.Equal(t, "docs/foo-docs.jar/com/foo/Bar.html#baz", uri)
		output := buf.String()
		assert.Contains(t, output, "msg=resolve")
		assert.Contains(t, output, "scala=com.foo.Bar#baz")
		assert.Contains(t, output, "uri=docs/foo-docs.jar/com/foo/Bar.html#baz")
		assert.Contains(t, output, "found=true")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(docuri.SignaturePair) (string, bool) { return "", false },
		}

		_, ok := dslog.NewLoggingResolver(inner, logger).Resolve(docuri.SignaturePair{})

		assert.False(t, ok)
		assert.Empty(t, buf.String())
	})
}
