// Package adapter turns per-platform configuration into course records.
// One generic engine runs every platform: validate the URL, probe it,
// open the page, pick the layout variant, fan out field extraction, and
// normalize the results.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/logger"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/internal/urlcheck"
	"github.com/coursepeek/coursepeek/pkg/course"
)

// Adapter scrapes one platform. It is stateless between calls and safe
// for concurrent use as long as its browser is.
type Adapter struct {
	config  Config
	browser browser.Browser
	checker *urlcheck.Checker
}

// New builds an adapter from a platform config and the session dependencies.
func New(cfg Config, b browser.Browser, checker *urlcheck.Checker) *Adapter {
	return &Adapter{config: cfg, browser: b, checker: checker}
}

// Scrape extracts the course record behind rawURL. The URL is validated
// and probed before any page session is opened; the session is always
// released before returning.
func (a *Adapter) Scrape(ctx context.Context, rawURL string) (*course.Record, error) {
	rawURL = urlcheck.Canonicalize(rawURL)
	if err := a.validateURL(rawURL); err != nil {
		return nil, err
	}

	if !a.checker.Exists(ctx, rawURL) {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, rawURL)
	}

	variant, ok := a.config.classify(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: no layout matches %s", ErrInvalidURL, rawURL)
	}
	logger.Debug("scraping course",
		"platform", a.config.Platform,
		"url", rawURL,
		"variant", variant.Name)

	page, err := a.browser.Open(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if r := a.config.Reject; r != nil {
		if found, _ := page.Exists(ctx, r.Locator); found {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCourse, r.Reason)
		}
	}

	// Reveal interactions run before the extraction fan-out so hidden
	// content is in the DOM by the time the fields race.
	for _, locator := range a.config.Reveal {
		if err := page.Click(ctx, locator); err != nil {
			logger.Debug("reveal click failed",
				"platform", a.config.Platform, "locator", locator, "error", err)
		}
	}

	raw := a.extract(ctx, page, variant.Fields)
	return a.assemble(rawURL, variant.Fields, raw), nil
}

// validateURL rejects unparseable URLs and hosts outside the platform.
func (a *Adapter) validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	if !a.config.HostAllowed(u.Hostname()) {
		return fmt.Errorf("%w: %s is not a %s url", ErrInvalidURL, rawURL, a.config.Platform)
	}
	return nil
}

// rawFields holds extraction output before normalization.
type rawFields struct {
	title        string
	organization string
	brief        string
	programme    course.Programme
	duration     string
	instructors  []string
	languages    []string
}

// extract runs every configured field concurrently. Field failures degrade
// to empty values; one broken locator never sinks the record.
func (a *Adapter) extract(ctx context.Context, page browser.Page, fields Fields) *rawFields {
	raw := &rawFields{}
	var wg sync.WaitGroup

	one := func(spec FieldSpec, dst *string) {
		if spec.IsZero() {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = a.extractOne(ctx, page, spec)
		}()
	}
	many := func(spec FieldSpec, dst *[]string) {
		if spec.IsZero() {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = a.extractMany(ctx, page, spec)
		}()
	}

	one(fields.Title, &raw.title)
	one(fields.Brief, &raw.brief)
	one(fields.Duration, &raw.duration)
	many(fields.Instructors, &raw.instructors)
	many(fields.Languages, &raw.languages)

	if a.config.Organization == "" {
		one(fields.Organization, &raw.organization)
	}

	if !fields.Programme.Items.IsZero() || fields.Programme.Outlined() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			raw.programme = a.extractProgramme(ctx, page, fields.Programme)
		}()
	}

	wg.Wait()
	return raw
}

// extractOne resolves a single-valued spec through its fallback chain.
func (a *Adapter) extractOne(ctx context.Context, page browser.Page, spec FieldSpec) string {
	if spec.Combine {
		var parts []string
		for _, locator := range spec.Locators {
			if v := a.evalOne(ctx, page, spec, locator); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, " ")
	}
	for _, locator := range spec.Locators {
		if v := a.evalOne(ctx, page, spec, locator); v != "" {
			return v
		}
	}
	return ""
}

// extractMany resolves a multi-valued spec through its fallback chain.
func (a *Adapter) extractMany(ctx context.Context, page browser.Page, spec FieldSpec) []string {
	for _, locator := range spec.Locators {
		if vs := a.evalMany(ctx, page, spec, locator); len(vs) > 0 {
			return vs
		}
	}
	return nil
}

func (a *Adapter) evalOne(ctx context.Context, page browser.Page, spec FieldSpec, locator string) string {
	var v string
	var err error
	switch spec.Strategy {
	case Attribute:
		v, err = page.Attribute(ctx, locator, spec.Attribute)
	case TextAfterMutation:
		v, err = page.TextAfterMutation(ctx, locator, spec.Timeout)
	case TextAll:
		// Multi-paragraph values collapse into one string.
		var vs []string
		vs, err = page.TextAll(ctx, locator)
		v = strings.Join(vs, " ")
	default:
		v, err = page.Text(ctx, locator)
	}
	if err != nil {
		logger.Debug("field locator failed",
			"platform", a.config.Platform, "locator", locator, "error", err)
		return ""
	}
	return v
}

func (a *Adapter) evalMany(ctx context.Context, page browser.Page, spec FieldSpec, locator string) []string {
	var vs []string
	var err error
	switch spec.Strategy {
	case AttributeAll:
		vs, err = page.AttributeAll(ctx, locator, spec.Attribute)
	case TextAllAfterMutation:
		vs, err = page.TextAllAfterMutation(ctx, locator, spec.Timeout)
	default:
		vs, err = page.TextAll(ctx, locator)
	}
	if err != nil {
		logger.Debug("field locator failed",
			"platform", a.config.Platform, "locator", locator, "error", err)
		return nil
	}
	return vs
}

// extractProgramme builds the syllabus in whichever shape the spec asks
// for. Outline extraction walks section titles in on-page order and pulls
// each section's items through the indexed locator template.
func (a *Adapter) extractProgramme(ctx context.Context, page browser.Page, spec ProgrammeSpec) course.Programme {
	if !spec.Outlined() {
		return course.Flat(normalize.CleanAll(a.extractMany(ctx, page, spec.Items)))
	}

	titles := normalize.CleanAll(a.extractMany(ctx, page, spec.SectionTitles))
	sections := make([]course.Section, 0, len(titles))
	for i, title := range titles {
		locator := fmt.Sprintf(spec.SectionItems, i+1)
		items, err := page.TextAll(ctx, locator)
		if err != nil {
			logger.Debug("section items failed",
				"platform", a.config.Platform, "section", title, "error", err)
		}
		sections = append(sections, course.Section{
			Title: title,
			Items: normalize.CleanAll(items),
		})
	}
	return course.Outline(sections)
}

// assemble normalizes raw extraction output into the final record.
func (a *Adapter) assemble(rawURL string, fields Fields, raw *rawFields) *course.Record {
	rec := &course.Record{
		Platform:     a.config.Platform,
		URL:          rawURL,
		Title:        normalize.CleanText(raw.title),
		Organization: normalize.CleanText(raw.organization),
		Brief:        normalize.CleanText(raw.brief),
		Programme:    raw.programme,
	}

	if a.config.Organization != "" {
		rec.Organization = a.config.Organization
	}

	if !fields.Duration.IsZero() {
		rec.Duration = normalize.Duration(raw.duration, fields.Duration.Rule)
	}

	instructors := normalize.DedupePreserveOrder(normalize.CleanAll(raw.instructors))
	if limit := a.config.InstructorCap; limit > 0 && len(instructors) > limit {
		instructors = instructors[:limit]
	}
	rec.Instructors = instructors

	rec.Languages = a.languages(raw)
	return rec
}

// languages resolves the record's language list: a fixed platform-wide set
// wins, then on-page language markup, then statistical detection over the
// brief when enabled.
func (a *Adapter) languages(raw *rawFields) []normalize.Language {
	if len(a.config.Languages) > 0 {
		return a.config.Languages
	}
	if langs := normalize.MapLanguageTokens(strings.Join(raw.languages, " ")); len(langs) > 0 {
		return langs
	}
	if a.config.DetectLanguage && raw.brief != "" {
		return normalize.DetectLanguage(raw.brief)
	}
	return nil
}
