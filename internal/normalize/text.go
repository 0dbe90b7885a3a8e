// Package normalize holds the pure field normalizers shared by every
// platform adapter: duration arithmetic, language mapping and detection,
// and text cleanup.
package normalize

import (
	"html"
	"strings"
	"unicode"
)

// CleanText collapses runs of whitespace, newlines and tabs into single
// spaces, strips control characters, unescapes HTML entities and trims the
// result.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// CleanAll applies CleanText to every item, dropping those that end up
// empty.
func CleanAll(items []string) []string {
	var out []string
	for _, item := range items {
		if cleaned := CleanText(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// DedupePreserveOrder removes repeated items while keeping first-seen
// order. Instructor lists are gathered from DOM nodes that often repeat the
// same name.
func DedupePreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
