// Package browser is the page access facade: it opens catalog pages and
// exposes a small locator-based extraction vocabulary. Adapters never talk
// to a rendering engine directly, only to this package.
//
// Locators are opaque path expressions. Expressions starting with "/" or
// "(" are evaluated as XPath, anything else as a CSS selector.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Navigation and mutation-wait failures. Navigation errors are fatal to a
// scrape; mutation timeouts degrade a single field.
var (
	ErrNavigation      = errors.New("navigation failed")
	ErrMutationTimeout = errors.New("timed out waiting for dom mutation")
)

// Page is one open page. All extraction methods return zero values, not
// errors, when the locator matches nothing; errors mean the evaluation
// itself failed or a mutation wait timed out. Close must be called exactly
// once, on every exit path.
type Page interface {
	// Text returns the trimmed text of the first matching element.
	Text(ctx context.Context, locator string) (string, error)
	// TextAll returns trimmed text of every match, in document order.
	TextAll(ctx context.Context, locator string) ([]string, error)
	// Attribute returns the named attribute of the first match.
	Attribute(ctx context.Context, locator, name string) (string, error)
	// AttributeAll returns the attribute from every match that has it.
	AttributeAll(ctx context.Context, locator, name string) ([]string, error)
	// TextAfterMutation resolves on the first DOM mutation that makes the
	// locator match, or fails with ErrMutationTimeout. One-shot wait.
	TextAfterMutation(ctx context.Context, locator string, timeout time.Duration) (string, error)
	// TextAllAfterMutation is the multi-element analog of TextAfterMutation.
	TextAllAfterMutation(ctx context.Context, locator string, timeout time.Duration) ([]string, error)
	// Exists probes for the locator without failing.
	Exists(ctx context.Context, locator string) (bool, error)
	// Click dispatches a click on the first match; a missing element is
	// logged, not an error.
	Click(ctx context.Context, locator string) error
	// Close releases the page and any underlying browser context.
	Close() error
}

// Browser opens pages.
type Browser interface {
	Open(ctx context.Context, url string) (Page, error)
	Close() error
}

// Mode selects the rendering strategy.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
	ModeAuto    Mode = "auto"
)

// Config holds facade configuration shared by both strategies.
type Config struct {
	UserAgent string
	// NavigationTimeout bounds page load (default 60s).
	NavigationTimeout time.Duration
	// MutationTimeout is the default wait for post-load DOM changes
	// (default 15s).
	MutationTimeout time.Duration
}

// DefaultConfig returns the timeouts used in production.
func DefaultConfig() Config {
	return Config{
		UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
		NavigationTimeout: 60 * time.Second,
		MutationTimeout:   15 * time.Second,
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.NavigationTimeout == 0 {
		c.NavigationTimeout = def.NavigationTimeout
	}
	if c.MutationTimeout == 0 {
		c.MutationTimeout = def.MutationTimeout
	}
	return c
}

// New creates a browser for the given mode.
func New(mode Mode, cfg Config) (Browser, error) {
	switch mode {
	case ModeStatic:
		return NewStatic(cfg), nil
	case ModeDynamic:
		return NewChrome(cfg), nil
	case ModeAuto, "":
		return NewAuto(cfg), nil
	default:
		return nil, fmt.Errorf("unknown browser mode: %s", mode)
	}
}

// isXPath reports whether a locator uses the XPath dialect.
func isXPath(locator string) bool {
	return len(locator) > 0 && (locator[0] == '/' || locator[0] == '(')
}
