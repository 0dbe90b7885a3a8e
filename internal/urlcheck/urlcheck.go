// Package urlcheck probes whether a course URL still resolves to its
// canonical page. Catalog platforms tend to redirect retired course slugs
// to a search or category page instead of returning 404, so a plain status
// check is not enough: the final path must match the requested one.
package urlcheck

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/coursepeek/coursepeek/internal/logger"
)

// Checker performs lightweight HEAD probes.
type Checker struct {
	client *resty.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout overrides the probe timeout (default 10s).
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.SetTimeout(d)
	}
}

// WithUserAgent sets the probe user agent, for platforms that reject
// requests without a browser-looking one.
func WithUserAgent(ua string) Option {
	return func(c *Checker) {
		c.client.SetHeader("User-Agent", ua)
	}
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{client: resty.New()}
	c.client.SetTimeout(10 * time.Second)
	c.client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether rawURL resolves to a live page at the same path.
// The fragment is stripped before probing. It returns false on any parse or
// network failure and never returns an error: an unreachable page and a
// missing page are the same to the caller.
func (c *Checker) Exists(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		logger.Debug("url probe rejected", "url", rawURL, "error", err)
		return false
	}
	parsed.Fragment = ""

	resp, err := c.client.R().SetContext(ctx).Head(parsed.String())
	if err != nil {
		logger.Debug("url probe failed", "url", rawURL, "error", err)
		return false
	}
	if !resp.IsSuccess() {
		logger.Debug("url probe non-success", "url", rawURL, "status", resp.StatusCode())
		return false
	}

	// The probe follows redirects; a final path different from the
	// requested one means the course no longer lives at this slug.
	final := resp.RawResponse.Request.URL
	if final != nil && final.Path != parsed.Path {
		logger.Debug("url probe redirected",
			"url", rawURL,
			"requested_path", parsed.Path,
			"final_path", final.Path)
		return false
	}
	return true
}

// Canonicalize strips the fragment from a URL, returning the form that is
// probed and recorded. Invalid URLs are returned unchanged.
func Canonicalize(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	return parsed.String()
}
