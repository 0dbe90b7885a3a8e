package adapter

import (
	"context"
	"errors"
	"sync"

	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/urlcheck"
	"github.com/coursepeek/coursepeek/pkg/course"
)

// Scraper dispatches scrapes to registered platforms. Browsers are created
// lazily per fetch mode and shared across scrapes; Close releases them.
type Scraper struct {
	browserConfig browser.Config
	checker       *urlcheck.Checker

	mu       sync.Mutex
	browsers map[browser.Mode]browser.Browser
}

// NewScraper builds the dispatching scraper. The browser config applies to
// every platform; each platform still picks its own fetch mode.
func NewScraper(cfg browser.Config) *Scraper {
	cfg = cfg.WithDefaults()
	return &Scraper{
		browserConfig: cfg,
		checker:       urlcheck.New(urlcheck.WithUserAgent(cfg.UserAgent)),
		browsers:      map[browser.Mode]browser.Browser{},
	}
}

// Scrape runs the named platform's adapter against rawURL.
func (s *Scraper) Scrape(ctx context.Context, platform, rawURL string) (*course.Record, error) {
	cfg, err := Lookup(platform)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, cfg, rawURL)
}

// ScrapeURL resolves the platform from the URL's hostname and scrapes it.
func (s *Scraper) ScrapeURL(ctx context.Context, rawURL string) (*course.Record, error) {
	cfg, err := Detect(rawURL)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, cfg, rawURL)
}

func (s *Scraper) run(ctx context.Context, cfg Config, rawURL string) (*course.Record, error) {
	b, err := s.browserFor(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return New(cfg, b, s.checker).Scrape(ctx, rawURL)
}

func (s *Scraper) browserFor(mode browser.Mode) (browser.Browser, error) {
	if mode == "" {
		mode = browser.ModeAuto
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.browsers[mode]; ok {
		return b, nil
	}
	b, err := browser.New(mode, s.browserConfig)
	if err != nil {
		return nil, err
	}
	s.browsers[mode] = b
	return b, nil
}

// Close releases every browser the scraper opened.
func (s *Scraper) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for mode, b := range s.browsers {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.browsers, mode)
	}
	return errors.Join(errs...)
}
