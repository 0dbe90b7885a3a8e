package normalize

import "testing"

func TestDuration_WeeksByHours(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"6 weeks, 4 hours a week", "24:00"},
		{"1 week, 3 hours a week", "03:00"},
		{"12 weeks of study, 10 hours per week", "120:00"},
		{"4 weeks", "00:00"}, // no pace published
	}

	for _, tt := range tests {
		if got := Duration(tt.raw, DurationWeeksByHours); got != tt.want {
			t.Errorf("Duration(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDuration_MonthsByPace(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"3 months at 10 hours a week", "120:00"},
		{"1 month at 5 hours a week", "20:00"},
	}

	for _, tt := range tests {
		if got := Duration(tt.raw, DurationMonthsByPace); got != tt.want {
			t.Errorf("Duration(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDuration_HoursOnly(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"11 hours", "11:00"},
		{"6.5 hours", "06:30"},
		{"Approx. 8 hours to complete", "08:00"},
		{"2,5 heures", "02:30"},
	}

	for _, tt := range tests {
		if got := Duration(tt.raw, DurationHours); got != tt.want {
			t.Errorf("Duration(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDuration_Clock(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"21h 30m", "21:30"},
		{"1h 05m", "01:05"},
		{"3h", "03:00"},
		{"45 min", "00:45"},
	}

	for _, tt := range tests {
		if got := Duration(tt.raw, DurationClock); got != tt.want {
			t.Errorf("Duration(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDuration_NonBreakingSpaces(t *testing.T) {
	// Udemy publishes running time with U+00A0 separators.
	if got := Duration("21h 30m", DurationClock); got != "21:30" {
		t.Errorf("Duration with nbsp = %q, want \"21:30\"", got)
	}
}

func TestDuration_NoMatchReturnsSentinel(t *testing.T) {
	for _, raw := range []string{"", "self paced", "Flexible schedule"} {
		if got := Duration(raw, DurationAuto); got != ZeroDuration {
			t.Errorf("Duration(%q) = %q, want %q", raw, got, ZeroDuration)
		}
	}
}

func TestDuration_AutoPicksPattern(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"6 weeks, 4 hours a week", "24:00"},
		{"3 months at 10 hours a week", "120:00"},
		{"11 hours", "11:00"},
	}

	for _, tt := range tests {
		if got := Duration(tt.raw, DurationAuto); got != tt.want {
			t.Errorf("Duration(%q, auto) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDuration_DeclaredRuleFallsBack(t *testing.T) {
	// A weeks-by-hours platform sometimes publishes total hours only; the
	// declared rule must not mask the simpler pattern.
	if got := Duration("24 hours", DurationWeeksByHours); got != "24:00" {
		t.Errorf("Duration fallback = %q, want \"24:00\"", got)
	}
}
