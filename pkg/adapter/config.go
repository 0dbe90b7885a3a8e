package adapter

import (
	"strings"
	"time"

	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
)

// Strategy names one page-access primitive. Each field spec picks the
// primitive that matches how its platform renders the value.
type Strategy string

const (
	Text                 Strategy = "text"
	TextAll              Strategy = "textAll"
	Attribute            Strategy = "attribute"
	AttributeAll         Strategy = "attributeAll"
	TextAfterMutation    Strategy = "textAfterMutation"
	TextAllAfterMutation Strategy = "textAllAfterMutation"
)

// FieldSpec describes how to pull one field off a page. Locators form a
// fallback chain tried in order; the first locator yielding content wins.
// With Combine set the chain is instead extracted in full and the pieces
// joined, for values split across elements (a duration published as
// "3 months" in one node and "10 hours a week" in another).
type FieldSpec struct {
	Strategy  Strategy
	Locators  []string
	Attribute string                 // for the attribute strategies
	Timeout   time.Duration          // for the mutation strategies, 0 means the browser default
	Combine   bool
	Rule      normalize.DurationRule // duration field only
}

// IsZero reports whether the spec is unset.
func (f FieldSpec) IsZero() bool { return len(f.Locators) == 0 }

// ProgrammeSpec describes syllabus extraction. Items alone yields the flat
// shape. SectionTitles plus SectionItems yields the outline shape:
// SectionItems is a locator template whose %d is replaced with the 1-based
// section index.
type ProgrammeSpec struct {
	Items         FieldSpec
	SectionTitles FieldSpec
	SectionItems  string
}

// Outlined reports whether the spec produces the section shape.
func (p ProgrammeSpec) Outlined() bool { return !p.SectionTitles.IsZero() }

// Fields holds one layout's field specs. Unset fields are skipped and left
// empty on the record.
type Fields struct {
	Title        FieldSpec
	Organization FieldSpec
	Brief        FieldSpec
	Programme    ProgrammeSpec
	Duration     FieldSpec
	Instructors  FieldSpec
	Languages    FieldSpec
}

// Variant is one page layout of a platform. A platform that serves both
// course pages and learning-path pages under different URL shapes gets one
// variant per shape; Match lists URL substrings that select it. A variant
// with no Match entries is the default layout.
type Variant struct {
	Name   string
	Match  []string
	Fields Fields
}

// Matches reports whether any match substring occurs in the URL.
func (v Variant) Matches(url string) bool {
	for _, m := range v.Match {
		if strings.Contains(url, m) {
			return true
		}
	}
	return false
}

// Reject marks pages the adapter refuses. When the locator matches, the
// scrape fails with ErrUnsupportedCourse.
type Reject struct {
	Locator string
	Reason  string
}

// Config is the full description of one platform: where its courses live,
// how to reach their pages, and how each field is located and normalized.
// Adapters are data, not code; every platform is an instance of this.
type Config struct {
	Platform string
	Hosts    []string     // hostnames the platform serves courses from
	Mode     browser.Mode // how pages are fetched

	Variants []Variant

	// Reveal lists locators clicked after navigation and before field
	// extraction, for content behind a dialog or accordion trigger.
	// Missing targets are skipped.
	Reveal []string

	Reject *Reject

	Organization string               // fixed publisher, skips extraction
	Languages    []normalize.Language // fixed language set, skips extraction

	// DetectLanguage enables statistical detection on the brief when the
	// page exposes no language markup.
	DetectLanguage bool

	InstructorCap int // 0 means unlimited
}

// HostAllowed reports whether the hostname belongs to this platform.
func (c Config) HostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, h := range c.Hosts {
		h = strings.ToLower(h)
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// classify picks the layout variant for a URL: the first variant with a
// matching substring, else the first variant without match rules.
func (c Config) classify(url string) (Variant, bool) {
	for _, v := range c.Variants {
		if len(v.Match) > 0 && v.Matches(url) {
			return v, true
		}
	}
	for _, v := range c.Variants {
		if len(v.Match) == 0 {
			return v, true
		}
	}
	return Variant{}, false
}
