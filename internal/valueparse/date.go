package valueparse

import (
	"regexp"
	"time"
)

var (
	dateRE     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	datetimeRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?$`)
)

// LooksLikeDate reports whether s matches the calendar-day pattern
// used to decide whether a finished string column is worth retrying
// as a date column.
func LooksLikeDate(s string) bool { return dateRE.MatchString(s) }

// LooksLikeDatetime reports whether s matches the calendar-day +
// time pattern, with either 'T' or a space as the date/time
// separator.
func LooksLikeDatetime(s string) bool { return datetimeRE.MatchString(s) }

// ParseDate parses a calendar-day string. It's a plain wrapper around
// time.Parse: the standard library's reference-layout parser is
// already exactly the "calendar parsing" the date retry pass needs,
// so there is nothing this project's own code could add.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DatetimeSeparator inspects the first datetime-shaped value in a
// column to decide whether the whole column uses 'T' or a space
// between date and time, per the "separator determined from the
// first value" rule.
func DatetimeSeparator(first string) byte {
	for i := 0; i < len(first); i++ {
		if first[i] == 'T' || first[i] == ' ' {
			return first[i]
		}
	}
	return 'T'
}

// ParseDatetime parses a calendar-day+time string using the given
// separator, with optional millisecond-precision fractional seconds.
func ParseDatetime(s string, sep byte) (time.Time, error) {
	layout := "2006-01-02" + string(sep) + "15:04:05"
	if hasFraction(s) {
		layout += ".000"
	}
	return time.Parse(layout, s)
}

func hasFraction(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
