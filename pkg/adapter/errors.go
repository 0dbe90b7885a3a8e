package adapter

import "errors"

var (
	// ErrUnknownPlatform is returned when no adapter is registered for the
	// requested platform name.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrInvalidURL is returned when the course URL cannot be parsed or
	// does not belong to the adapter's platform.
	ErrInvalidURL = errors.New("invalid course url")

	// ErrCourseNotFound is returned when the URL fails the existence probe
	// before any browser session is opened: the page 404s, or the site
	// redirects to a different path (usually a catalog landing page).
	ErrCourseNotFound = errors.New("course not found")

	// ErrUnsupportedCourse is returned when the page exists but the adapter
	// cannot extract it, such as a paywalled listing on a platform where
	// only free course pages expose metadata.
	ErrUnsupportedCourse = errors.New("unsupported course page")
)
