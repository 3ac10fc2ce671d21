package mock

import (
	"context"

	"github.com/fwojciec/patentdump"
)

var _ patentdump.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of patentdump.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*patentdump.RawPage, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*patentdump.RawPage, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
