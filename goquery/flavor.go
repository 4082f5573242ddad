// Package goquery provides HTML inspection of documentation pages backed by
// PuerkitoBio/goquery: flavor detection for index documents, scaladoc use
// case lookup and removal of generator navigation.
package goquery

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docuri"
	"golang.org/x/net/html"
)

// Ensure FlavorDetector implements docuri.FlavorDetector at compile time.
var _ docuri.FlavorDetector = (*FlavorDetector)(nil)

// javadocMarker matches the comment javadoc writes at the top of every
// page. Javadoc 8 and later follow it with "(<version>"; javadoc 7 writes
// "(version <version>" which leaves the group empty.
var javadocMarker = regexp.MustCompile(`Generated by javadoc(?: \(([0-9.]+))?`)

// javadoc8Version is the version prefix of the javadoc release whose
// anchors replace parentheses and commas with dashes.
const javadoc8Version = "1.8"

// FlavorDetector classifies archives from their index.html.
type FlavorDetector struct{}

// NewFlavorDetector creates a new FlavorDetector.
func NewFlavorDetector() *FlavorDetector {
	return &FlavorDetector{}
}

// DetectFlavor returns the flavor indicated by the javadoc generator
// comment in indexHTML, falling back to the generator meta tag.
// Returns docuri.FlavorScaladoc if neither is present.
func (d *FlavorDetector) DetectFlavor(indexHTML []byte) docuri.Flavor {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(indexHTML))
	if err != nil {
		return flavorFromText(string(indexHTML))
	}

	for _, n := range doc.Nodes {
		if f, ok := flavorFromComments(n); ok {
			return f
		}
	}

	generator, _ := doc.Find("meta[name='generator']").Attr("content")
	if strings.HasPrefix(strings.ToLower(generator), "javadoc") {
		return docuri.FlavorJavadoc
	}

	return docuri.FlavorScaladoc
}

// flavorFromComments walks n depth-first and classifies the first comment
// carrying the javadoc marker.
func flavorFromComments(n *html.Node) (docuri.Flavor, bool) {
	if n.Type == html.CommentNode && javadocMarker.MatchString(n.Data) {
		return flavorFromText(n.Data), true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f, ok := flavorFromComments(c); ok {
			return f, true
		}
	}
	return "", false
}

func flavorFromText(text string) docuri.Flavor {
	m := javadocMarker.FindStringSubmatch(text)
	switch {
	case m == nil:
		return docuri.FlavorScaladoc
	case strings.HasPrefix(m[1], javadoc8Version):
		return docuri.FlavorJavadoc8
	}
	return docuri.FlavorJavadoc
}
