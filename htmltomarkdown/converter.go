package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docuri"
)

// Ensure Converter implements docuri.Converter at compile time.
var _ docuri.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert documentation pages to
// Markdown. Member summaries in javadoc are tables, so the table plugin is
// always enabled.
type Converter struct {
	// Domain, when set, turns relative links into absolute ones
	// rooted at it.
	Domain string

	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docuri.Errorf(docuri.EINVALID, "empty HTML input")
	}

	var (
		md  string
		err error
	)
	if c.Domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.Domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", docuri.Errorf(docuri.EINVALID, "convert to markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}
