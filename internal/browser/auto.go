package browser

import (
	"context"
	"strings"

	"github.com/coursepeek/coursepeek/internal/logger"
)

// Auto opens pages statically and falls back to the headless browser when
// the fetched document looks like an unrendered client-side app.
type Auto struct {
	static  *Static
	dynamic *Chrome
}

// NewAuto creates the auto-detecting browser.
func NewAuto(cfg Config) *Auto {
	return &Auto{
		static:  NewStatic(cfg),
		dynamic: NewChrome(cfg),
	}
}

// Open tries a static fetch first; on failure or an apparent SPA shell it
// retries with the headless browser.
func (a *Auto) Open(ctx context.Context, url string) (Page, error) {
	page, err := a.static.Open(ctx, url)
	if err != nil {
		logger.Debug("static open failed, trying headless", "url", url, "error", err)
		return a.dynamic.Open(ctx, url)
	}

	sp := page.(*staticPage)
	if needsJavaScript(sp.html) {
		logger.Debug("page needs javascript, using headless", "url", url)
		_ = page.Close()
		return a.dynamic.Open(ctx, url)
	}
	return page, nil
}

// Close releases the headless browser.
func (a *Auto) Close() error {
	return a.dynamic.Close()
}

// needsJavaScript checks for markers of a page that renders client-side.
func needsJavaScript(rawHTML string) bool {
	lower := strings.ToLower(rawHTML)

	spaMarkers := []string{
		`<div id="root"></div>`,
		`<div id="app"></div>`,
		`<app-root></app-root>`,
		`<div id="__next"></div>`,
		`<div id="__nuxt"></div>`,
		`<div data-reactroot`,
	}
	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	if strings.Contains(lower, "<noscript>") {
		noscript := extractBetween(lower, "<noscript>", "</noscript>")
		for _, indicator := range []string{"enable javascript", "javascript is required", "javascript required"} {
			if strings.Contains(noscript, indicator) {
				return true
			}
		}
	}
	return false
}

// extractBetween extracts content between two markers.
func extractBetween(s, start, end string) string {
	startIdx := strings.Index(s, start)
	if startIdx == -1 {
		return ""
	}
	startIdx += len(start)

	endIdx := strings.Index(s[startIdx:], end)
	if endIdx == -1 {
		return ""
	}
	return s[startIdx : startIdx+endIdx]
}
