// Package http provides an HTTP-based implementation of htmlcheck.Fetcher
// for pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/htmlcheck"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies htmlcheck to the servers it fetches from.
const DefaultUserAgent = "htmlcheck/1.0 (+https://github.com/fwojciec/htmlcheck)"

// Ensure Fetcher implements htmlcheck.Fetcher at compile time.
var _ htmlcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// Unlike rod.Fetcher, this does not execute JavaScript. Each Fetch makes a
// single attempt; wrap it in a retry.Fetcher for retries.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetHeader("User-Agent", f.userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	return f
}

// Fetch retrieves the HTML served at url, decoded to UTF-8 using the charset
// declared by the response or sniffed from its content.
// Transport failures and non-2xx responses return EFETCH. Client errors other
// than 408 and 429 are also marked htmlcheck.Permanent.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "fetching %s: %v", url, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		err := htmlcheck.Errorf(htmlcheck.EFETCH, "HTTP %d for %s", resp.StatusCode(), url)
		if isPermanentStatus(resp.StatusCode()) {
			return "", htmlcheck.Permanent(err)
		}
		return "", err
	}

	r, err := charset.NewReader(body, resp.Header().Get("Content-Type"))
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "decoding %s: %v", url, err)
	}

	html, err := io.ReadAll(r)
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "reading %s: %v", url, err)
	}

	return string(html), nil
}

// Close releases resources. It is a no-op: the resty client holds only
// pooled keep-alive connections, which its transport closes when idle.
func (f *Fetcher) Close() error {
	return nil
}

// isPermanentStatus reports whether a response status will not change on
// retry: any 4xx except 408 Request Timeout and 429 Too Many Requests.
func isPermanentStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return false
	}
	return code >= 400 && code < 500
}
