// Package fs writes converted documentation pages to a directory tree.
package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docuri"
	"gopkg.in/yaml.v3"
)

// PagePath converts an archive entry to the relative path of its Markdown
// file: "foo-docs.jar" and "com/foo/Bar.html" give
// "foo-docs.jar/com/foo/Bar.md".
func PagePath(archive, entry string) string {
	entry = strings.TrimSuffix(entry, path.Ext(entry)) + ".md"
	return filepath.Join(archive, filepath.FromSlash(entry))
}

type frontmatter struct {
	Source  string `yaml:"source"`
	Archive string `yaml:"archive"`
	Title   string `yaml:"title,omitempty"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *docuri.Page) (string, error) {
	meta, err := yaml.Marshal(frontmatter{Source: page.URI, Archive: page.Archive, Title: page.Title})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	if !strings.HasSuffix(page.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements docuri.PageWriter at compile time.
var _ docuri.PageWriter = (*Writer)(nil)

// Writer writes pages as Markdown files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes page to disk and returns the file path.
func (w *Writer) WritePage(ctx context.Context, page *docuri.Page) (string, error) {
	if err := page.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, PagePath(page.Archive, page.Path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content, err := FormatPage(page)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
