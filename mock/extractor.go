package mock

import "github.com/fwojciec/docuri"

var _ docuri.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docuri.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docuri.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docuri.ExtractResult, error) {
	return e.ExtractFn(html)
}
