package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docuri"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docuri.Extractor at compile time.
var _ docuri.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a
// documentation page.
type Extractor struct {
	// IncludeLinks keeps cross references between documentation pages.
	IncludeLinks bool
}

// NewExtractor creates a new Extractor that keeps links.
func NewExtractor() *Extractor {
	return &Extractor{IncludeLinks: true}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docuri.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docuri.Errorf(docuri.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   e.IncludeLinks,
	})
	if err != nil {
		return nil, docuri.Errorf(docuri.EINVALID, "extract content: %v", err)
	}

	var content string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		content = buf.String()
	}

	return &docuri.ExtractResult{
		Title:       docuri.TrimTitle(result.Metadata.Title),
		ContentHTML: content,
	}, nil
}
