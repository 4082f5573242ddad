package docuri

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML from an Extractor.
	Convert(html string) (string, error)
}
