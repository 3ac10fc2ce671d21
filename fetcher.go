package patentdump

import (
	"context"
	"time"
)

// DefaultFetchTimeout bounds a whole fetch.
const DefaultFetchTimeout = 30 * time.Second

// Default request headers. A browser-like User-Agent avoids trivial blocking.
const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
)

// RawPage is the content of a fetched page before any decoding or parsing.
type RawPage struct {
	// URL is the address that was requested.
	URL string

	// ContentType is the response media type, used to pick a character set.
	ContentType string

	// Body holds the bytes exactly as received.
	Body []byte
}

// Fetcher retrieves pages from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url. A transport failure, timeout or
	// non-2xx status returns an EFETCH error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*RawPage, error)

	// Close releases resources held by the fetcher.
	Close() error
}
