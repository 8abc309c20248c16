package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDateRgx     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	displayDateRgx = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// ToDisplayDate converts an ISO date (YYYY-MM-DD) to the display format
// (DD-MM-YYYY) used by the upstream showtime feed. Input that doesn't match
// the ISO pattern is returned unchanged, so the conversion is safe to apply
// to values that are already in display format. Filter call sites rely on
// this pass-through to compare two already-normalized values.
func ToDisplayDate(date string) string {
	if !isoDateRgx.MatchString(date) {
		return date
	}

	parts := strings.SplitN(date, "-", 3)

	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ToISODate is the inverse of ToDisplayDate, with the same pass-through rule
// for input that doesn't match the display pattern.
func ToISODate(date string) string {
	if !displayDateRgx.MatchString(date) {
		return date
	}

	parts := strings.SplitN(date, "-", 3)

	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// IsAtOrAfter reports whether a showtime ("HH:MM") is at or after the given
// cutoff. An empty cutoff accepts everything; an empty showtime never
// matches. Unparseable values are treated as "does not match" rather than an
// error, since a malformed upstream time must not break a listing page.
func IsAtOrAfter(showtime, cutoff string) bool {
	if cutoff == "" {
		return true
	}

	if showtime == "" {
		return false
	}

	showHour, showMinute, ok := parseClock(showtime)
	if !ok {
		return false
	}

	cutoffHour, cutoffMinute, ok := parseClock(cutoff)
	if !ok {
		return false
	}

	if showHour != cutoffHour {
		return showHour > cutoffHour
	}

	return showMinute >= cutoffMinute
}

func parseClock(s string) (int, int, bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}

	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, 0, false
	}

	return hour, minute, true
}
