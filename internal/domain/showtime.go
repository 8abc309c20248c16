package domain

import "strings"

// Showtime is a single scheduled screening, as delivered by the upstream
// catalog API. Dates arrive in display format (DD-MM-YYYY), times as 24-hour
// HH:MM strings. Records are immutable once received.
type Showtime struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Cinema      string `json:"cinema"`
	BookingLink string `json:"booking_link"`
}

// FilterCriteria narrows a movie's showtime list. Date is an ISO calendar
// date; the remaining fields are optional and empty means "accept all".
type FilterCriteria struct {
	Date     string
	Time     string
	Cinema   string
	Language string
}

const (
	LanguageItalian  = "Italiano"
	LanguageOriginal = "Original"
)

// filterContext holds criteria normalized once, so the per-showtime match
// doesn't re-derive them inside the loop.
type filterContext struct {
	criteria    FilterCriteria
	displayDate string
	cinema      string
	language    string
}

func newFilterContext(language string, criteria FilterCriteria) *filterContext {
	return &filterContext{
		criteria:    criteria,
		displayDate: ToDisplayDate(criteria.Date),
		cinema:      normalizeCinema(criteria.Cinema),
		language:    strings.ToLower(language),
	}
}

// FilterShowtimes returns the showtimes matching every active criterion.
// language is the owning movie's language tag, checked against
// criteria.Language. Zero matches yields an empty slice, never an error.
func FilterShowtimes(showtimes []Showtime, language string, criteria FilterCriteria) []Showtime {
	fc := newFilterContext(language, criteria)

	filtered := make([]Showtime, 0, len(showtimes))

	for _, s := range showtimes {
		if fc.matches(s) {
			filtered = append(filtered, s)
		}
	}

	return filtered
}

// matches returns true only if ALL active criteria pass.
func (fc *filterContext) matches(s Showtime) bool {
	if s.Date != fc.displayDate {
		return false
	}

	if fc.cinema != "" && normalizeCinema(s.Cinema) != fc.cinema {
		return false
	}

	if !IsAtOrAfter(s.Time, fc.criteria.Time) {
		return false
	}

	switch fc.criteria.Language {
	case LanguageItalian:
		return strings.HasPrefix(fc.language, "italiano")
	case LanguageOriginal:
		return !strings.HasPrefix(fc.language, "italiano")
	default:
		return true
	}
}

// normalizeCinema lowercases a cinema name and collapses whitespace runs to a
// single "+", matching how cinema names round-trip through query parameters.
func normalizeCinema(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "+")
}

// CinemaShowtimes is one display group: a cinema and its showtimes in their
// original relative order.
type CinemaShowtimes struct {
	Cinema    string
	Showtimes []Showtime
}

// GroupByCinema groups showtimes by cinema name. Groups appear in first-seen
// cinema order and each group preserves the input order of its showtimes.
func GroupByCinema(showtimes []Showtime) []CinemaShowtimes {
	var groups []CinemaShowtimes
	index := make(map[string]int, len(showtimes))

	for _, s := range showtimes {
		i, ok := index[s.Cinema]
		if !ok {
			i = len(groups)
			index[s.Cinema] = i
			groups = append(groups, CinemaShowtimes{Cinema: s.Cinema})
		}

		groups[i].Showtimes = append(groups[i].Showtimes, s)
	}

	return groups
}
