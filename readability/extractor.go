package readability

import (
	"strings"

	"github.com/fwojciec/docuri"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docuri.Extractor at compile time.
var _ docuri.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main content of a
// documentation page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docuri.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docuri.Errorf(docuri.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docuri.Errorf(docuri.EINVALID, "extract content: %v", err)
	}

	return &docuri.ExtractResult{
		Title:       docuri.TrimTitle(article.Title),
		ContentHTML: article.Content,
	}, nil
}
