package normalize

import (
	"reflect"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "  a\n\n  b\t\tc  ", "a b c"},
		{"unescapes entities", "Data &amp; AI &quot;basics&quot;", `Data & AI "basics"`},
		{"strips control characters", "intro\u0000 \u0007to go", "intro to go"},
		{"empty input", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"angle bracket entities", "&lt;ul&gt; &apos;items&apos;", "<ul> 'items'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanAll_DropsEmptyItems(t *testing.T) {
	got := CleanAll([]string{" Week 1 ", "\n", "", "Week  2"})
	want := []string{"Week 1", "Week 2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanAll() = %v, want %v", got, want)
	}
}

func TestDedupePreserveOrder(t *testing.T) {
	got := DedupePreserveOrder([]string{"Jo", "Ann", "Jo", "Bo"})
	want := []string{"Jo", "Ann", "Bo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupePreserveOrder() = %v, want %v", got, want)
	}
}

func TestDedupePreserveOrder_Empty(t *testing.T) {
	if got := DedupePreserveOrder(nil); got != nil {
		t.Errorf("DedupePreserveOrder(nil) = %v, want nil", got)
	}
}
