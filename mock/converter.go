package mock

import "github.com/fwojciec/docuri"

var _ docuri.Converter = (*Converter)(nil)

// Converter is a mock implementation of docuri.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
