// Package fetch issues the single GET request each command needs.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"tpb/internal/apperr"
	"tpb/internal/logger"
)

const (
	UserAgent      = "tbp browser/0.1"
	DefaultTimeout = 30 * time.Second
)

type Fetcher struct {
	headers   map[string]string
	transport http.RoundTripper
	timeout   time.Duration
}

type Option func(*Fetcher)

// WithTransport replaces the HTTP transport, e.g. with an httptest server client.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) { f.transport = rt }
}

// WithHeaders adds request headers on top of the User-Agent.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		for k, v := range headers {
			f.headers[k] = v
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) { f.timeout = timeout }
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		headers: map[string]string{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fetcher) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(UserAgent),
		colly.AllowURLRevisit(),
		colly.StdlibContext(ctx),
	)
	if f.transport != nil {
		c.WithTransport(f.transport)
	}
	c.SetRequestTimeout(f.timeout)
	return c
}

// Get performs exactly one GET against url and returns the response body.
// Responses outside the success range fail with the HTTP reason phrase.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	c := f.newCollector(ctx)

	var (
		body   []byte
		status int
	)
	start := time.Now()

	c.OnRequest(func(r *colly.Request) {
		for k, v := range f.headers {
			r.Headers.Set(k, v)
		}
	})
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = append([]byte(nil), r.Body...)
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	err := c.Visit(url)
	logger.LogHTTPRequest(http.MethodGet, url, status, time.Since(start))
	if err != nil {
		return nil, apperr.Network(fmt.Sprintf("GET %s", url), err)
	}
	return body, nil
}
