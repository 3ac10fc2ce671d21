// Package rod provides a browser-based implementation of patentdump.Fetcher
// for pages that only render their content with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/patentdump"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// renderedContentType describes the body returned by Fetch. The browser
// serializes the DOM as UTF-8 whatever the original encoding was.
const renderedContentType = "text/html; charset=utf-8"

// Ensure Fetcher implements patentdump.Fetcher at compile time.
var _ patentdump.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	mu       sync.Mutex
	closed   atomic.Bool

	timeout        time.Duration
	userAgent      string
	acceptLanguage string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds navigation and rendering of a single page.
// Defaults to patentdump.DefaultFetchTimeout (30s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAcceptLanguage overrides the browser's Accept-Language header.
func WithAcceptLanguage(lang string) Option {
	return func(f *Fetcher) {
		f.acceptLanguage = lang
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:        patentdump.DefaultFetchTimeout,
		userAgent:      patentdump.DefaultUserAgent,
		acceptLanguage: patentdump.DefaultAcceptLanguage,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load and returns the
// rendered DOM. The main document must be served with a 2xx status.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*patentdump.RawPage, error) {
	f.mu.Lock()
	browser := f.browser
	f.mu.Unlock()
	if browser == nil {
		return nil, patentdump.Errorf(patentdump.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "fetching %s: %w", url, err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      f.userAgent,
		AcceptLanguage: f.acceptLanguage,
	}); err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "setting user agent: %w", err)
	}

	// Subscribe before navigating so the document response is not missed.
	var status int
	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "fetching %s: %w", url, err)
	}
	waitResponse()

	if err := ctx.Err(); err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "fetching %s: %w", url, err)
	}
	if status < 200 || status > 299 {
		return nil, patentdump.Errorf(patentdump.EFETCH, "HTTP %d for %s", status, url)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "loading %s: %w", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, patentdump.Errorf(patentdump.EFETCH, "reading %s: %w", url, err)
	}

	return &patentdump.RawPage{
		URL:         url,
		ContentType: renderedContentType,
		Body:        []byte(html),
	}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}
