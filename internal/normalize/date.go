package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthsByName = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

var monthsByAbbrev = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	reDateISO     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reDateYMD     = regexp.MustCompile(`^(\d{4})[/.-](\d{1,2})[/.-](\d{1,2})$`)
	reDateNumeric = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})$`)
	// "June 19, 2023", "Jun. 19 2023", "June 19th, 2023"
	reDateMonthFirst = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\s*,?\s*(\d{4})$`)
	// "19 June 2023", "19th of June, 2023"
	reDateDayFirst = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+)\.?\s*,?\s*(\d{4})$`)
)

// Date parses a heterogeneous date representation into canonical
// zero-padded YYYY-MM-DD. It returns "" when no supported format
// matches; callers log that outcome rather than guessing.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if m := reDateISO.FindStringSubmatch(s); m != nil {
		return canonical(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reDateYMD.FindStringSubmatch(s); m != nil {
		return canonical(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reDateNumeric.FindStringSubmatch(s); m != nil {
		a, b, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		// A first component above 12 can only be a day.
		if a > 12 {
			return canonical(year, b, a)
		}
		return canonical(year, a, b)
	}
	if m := reDateMonthFirst.FindStringSubmatch(s); m != nil {
		if mo := monthNumber(m[1]); mo > 0 {
			return canonical(atoi(m[3]), mo, atoi(m[2]))
		}
		return ""
	}
	if m := reDateDayFirst.FindStringSubmatch(s); m != nil {
		if mo := monthNumber(m[2]); mo > 0 {
			return canonical(atoi(m[3]), mo, atoi(m[1]))
		}
		return ""
	}
	return ""
}

func monthNumber(name string) int {
	n := strings.ToLower(strings.TrimSpace(name))
	if mo, ok := monthsByName[n]; ok {
		return mo
	}
	if mo, ok := monthsByAbbrev[n]; ok {
		return mo
	}
	return 0
}

// canonical validates the calendar date and formats it, or returns "".
func canonical(year, month, day int) string {
	if year < 1000 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return ""
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
