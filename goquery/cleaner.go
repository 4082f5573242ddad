package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docuri"
)

// Ensure Cleaner implements docuri.Extractor at compile time.
var _ docuri.Extractor = (*Cleaner)(nil)

// chromeSelectors match the navigation generated around javadoc and
// scaladoc content.
var chromeSelectors = []string{
	"script", "noscript", "style",
	"header", "footer", "nav",
	".topNav", ".subNav", ".bottomNav", ".skipNav", ".navPadding",
	".legalCopy", ".fixedNav",
	"#mbrsel", "#search", "#textfilter", "#footer",
}

// Cleaner removes generator navigation from documentation pages, leaving
// the body content.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Extract strips javadoc and scaladoc navigation from rawHTML and returns
// the remaining body with the page title.
func (c *Cleaner) Extract(rawHTML string) (*docuri.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docuri.Errorf(docuri.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	title := docuri.TrimTitle(doc.Find("title").First().Text())
	doc.Find(strings.Join(chromeSelectors, ", ")).Remove()

	content, err := doc.Find("body").Html()
	if err != nil {
		return nil, err
	}

	return &docuri.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(content),
	}, nil
}
