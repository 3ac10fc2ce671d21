package mock

import "github.com/fwojciec/patentdump"

var _ patentdump.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of patentdump.Extractor.
type Extractor struct {
	ExtractFn func(page *patentdump.RawPage) (*patentdump.ExtractResult, error)
}

func (e *Extractor) Extract(page *patentdump.RawPage) (*patentdump.ExtractResult, error) {
	return e.ExtractFn(page)
}
