package browser

import (
	"strings"
	"testing"
)

func TestFinderJS_Dialects(t *testing.T) {
	if got := finderJS("//h1"); !strings.Contains(got, "document.evaluate") {
		t.Errorf("xpath locator did not use document.evaluate: %s", got)
	}
	if got := finderJS("h1.title"); !strings.Contains(got, "querySelectorAll") {
		t.Errorf("css locator did not use querySelectorAll: %s", got)
	}
}

func TestSingleElementScripts_EmptyStringFallback(t *testing.T) {
	// An absent element must yield "" so evaluation unmarshals into a
	// plain string instead of failing on a null result.
	tests := []struct {
		name   string
		script string
	}{
		{"text", textJS("h1.missing")},
		{"attribute", attributeJS("a.missing", "href")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strings.Contains(tt.script, "null") {
				t.Errorf("script can resolve to null:\n%s", tt.script)
			}
			if !strings.Contains(tt.script, `""`) {
				t.Errorf("script has no empty-string fallback:\n%s", tt.script)
			}
		})
	}
}

func TestScriptsQuoteLocators(t *testing.T) {
	script := textJS(`//h1[@title="a 'quoted' value"]`)
	if !strings.Contains(script, `\"quoted\"`) && !strings.Contains(script, "'quoted'") {
		t.Errorf("locator not safely embedded:\n%s", script)
	}
}
