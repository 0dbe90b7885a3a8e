package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DurationRule names a platform's published duration convention. Platforms
// phrase effort differently (total hours, weekly pace over several weeks or
// months, running time), so the rules stay separate instead of one unified
// formula.
type DurationRule string

const (
	// DurationHours handles "11 hours" or "6.5 hours" of total effort.
	DurationHours DurationRule = "hours"
	// DurationWeeksByHours handles "6 weeks, 4 hours a week".
	DurationWeeksByHours DurationRule = "weeks-by-hours"
	// DurationMonthsByPace handles "3 months at 10 hours a week",
	// counting 4 weeks per month.
	DurationMonthsByPace DurationRule = "months-by-pace"
	// DurationClock handles running times like "21h 30m".
	DurationClock DurationRule = "clock"
	// DurationAuto tries every known pattern in a fixed order.
	DurationAuto DurationRule = "auto"
)

// ZeroDuration is returned when no duration pattern matches.
const ZeroDuration = "00:00"

var (
	weeksRe   = regexp.MustCompile(`(\d+)\s*(?:week|semaine)`)
	monthsRe  = regexp.MustCompile(`(\d+)\s*(?:month|mois)`)
	hoursRe   = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:hour|heure|hrs|h\b)`)
	minutesRe = regexp.MustCompile(`(\d+)\s*m(?:in)?(?:ute)?s?\b`)
)

// Duration converts a raw duration phrase to the canonical "HH:MM" encoding
// using the given rule. It never fails: unmatched input yields ZeroDuration.
func Duration(raw string, rule DurationRule) string {
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ZeroDuration
	}

	switch rule {
	case DurationWeeksByHours:
		if out, ok := weeksByHours(raw); ok {
			return out
		}
	case DurationMonthsByPace:
		if out, ok := monthsByPace(raw); ok {
			return out
		}
	case DurationClock:
		if out, ok := clock(raw); ok {
			return out
		}
	case DurationHours:
		if out, ok := hoursOnly(raw); ok {
			return out
		}
	}

	// Either the rule is auto or the declared rule found nothing on this
	// page variant; try every pattern, most specific first.
	for _, try := range []func(string) (string, bool){
		monthsByPace, weeksByHours, clock, hoursOnly, minutesOnly,
	} {
		if out, ok := try(raw); ok {
			return out
		}
	}
	return ZeroDuration
}

// weeksByHours computes weeks x hours-per-week, e.g. "6 weeks, 4 hours a
// week" gives "24:00".
func weeksByHours(raw string) (string, bool) {
	w := weeksRe.FindStringSubmatch(raw)
	h := hoursRe.FindStringSubmatch(raw)
	if w == nil || h == nil {
		return "", false
	}
	weeks, _ := strconv.Atoi(w[1])
	hours := parseDecimal(h[1])
	return hoursToHHMM(float64(weeks) * hours), true
}

// monthsByPace computes months x 4 x hours-per-week.
func monthsByPace(raw string) (string, bool) {
	m := monthsRe.FindStringSubmatch(raw)
	h := hoursRe.FindStringSubmatch(raw)
	if m == nil || h == nil {
		return "", false
	}
	months, _ := strconv.Atoi(m[1])
	pace := parseDecimal(h[1])
	return hoursToHHMM(float64(months) * 4 * pace), true
}

// clock reads running times of the "21h 30m" shape.
func clock(raw string) (string, bool) {
	h := hoursRe.FindStringSubmatch(raw)
	if h == nil {
		return "", false
	}
	hours := parseDecimal(h[1])
	minutes := 0
	if m := minutesRe.FindStringSubmatch(raw); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	return hoursToHHMM(hours + float64(minutes)/60), true
}

// hoursOnly reads total-effort phrases like "11 hours"; decimal hours carry
// into the minutes part ("6.5 hours" gives "06:30").
func hoursOnly(raw string) (string, bool) {
	h := hoursRe.FindStringSubmatch(raw)
	if h == nil {
		return "", false
	}
	return hoursToHHMM(parseDecimal(h[1])), true
}

// minutesOnly reads bare minute counts like "45 min".
func minutesOnly(raw string) (string, bool) {
	m := minutesRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	minutes, _ := strconv.Atoi(m[1])
	return hoursToHHMM(float64(minutes) / 60), true
}

func hoursToHHMM(hours float64) string {
	whole := int(hours)
	minutes := int((hours-float64(whole))*60 + 0.5)
	if minutes == 60 {
		whole++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", whole, minutes)
}

func parseDecimal(s string) float64 {
	f, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return f
}
