package docuri

import (
	"context"
	"path"
	"strings"
)

// Page is a documentation page converted to Markdown.
type Page struct {
	// Archive is the name of the archive holding the page.
	Archive string

	// Path is the archive-relative path of the HTML document.
	Path string

	// URI is the local documentation URI of the page.
	URI string

	Title   string
	Content string // Markdown
}

// Validate returns an error if the page cannot be stored.
func (p *Page) Validate() error {
	if p.Archive == "" {
		return Errorf(EINVALID, "page archive required")
	}
	if p.Path == "" || path.IsAbs(p.Path) || strings.HasPrefix(path.Clean(p.Path), "..") {
		return Errorf(EINVALID, "page path %q must be relative to the archive", p.Path)
	}
	return nil
}

// PageWriter stores converted pages and reports where each was written.
type PageWriter interface {
	WritePage(ctx context.Context, page *Page) (string, error)
}
