package docuri

import "strings"

// ExtractResult holds the content extracted from a documentation page.
type ExtractResult struct {
	// Title is the page title with any generator suffix removed.
	Title string

	// ContentHTML is the main content as clean HTML. Navigation bars
	// generated by javadoc and scaladoc have been removed.
	ContentHTML string
}

// Extractor extracts main content from documentation pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// TrimTitle removes the suffix javadoc appends to page titles:
// "List (Java Platform SE 8 )" becomes "List".
func TrimTitle(title string) string {
	title = strings.TrimSpace(title)
	if i := strings.LastIndex(title, " ("); i > 0 && strings.HasSuffix(title, ")") {
		return title[:i]
	}
	return title
}
