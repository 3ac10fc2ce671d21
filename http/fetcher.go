// Package http provides an HTTP-based implementation of patentdump.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/patentdump"
)

// Ensure Fetcher implements patentdump.Fetcher at compile time.
var _ patentdump.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	header  http.Header
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to patentdump.DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(ua string) Option {
	return WithHeader("User-Agent", ua)
}

// WithAcceptLanguage sets the Accept-Language request header.
func WithAcceptLanguage(lang string) Option {
	return WithHeader("Accept-Language", lang)
}

// WithHeader sets an arbitrary request header. An empty value removes it.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		if value == "" {
			f.header.Del(key)
			return
		}
		f.header.Set(key, value)
	}
}

// WithClient uses a copy of c for requests. The copy's Timeout is replaced
// with the configured timeout; c itself is not modified.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		cp := *c
		f.client = &cp
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: patentdump.DefaultFetchTimeout,
		header:  make(http.Header),
	}
	f.header.Set("User-Agent", patentdump.DefaultUserAgent)
	f.header.Set("Accept-Language", patentdump.DefaultAcceptLanguage)

	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the page at url. The body is returned undecoded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*patentdump.RawPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "building request for %s: %w", url, err)
	}
	req.Header = f.header.Clone()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, patentdump.Errorf(patentdump.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "reading %s: %w", url, err)
	}

	return &patentdump.RawPage{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
