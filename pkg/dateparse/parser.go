package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	literalDateRe = regexp.MustCompile(`\b(\d{2}-\d{2}-\d{4})\b`)
	wordDateRe    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december)(?:\s+(\d{4}))?\b`)
	clockTimeRe   = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	hourOnlyRe    = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
)

var months = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// DefaultYear is assumed when a date mention carries no year.
const DefaultYear = 2024

// FindDate scans free text for a date mention and returns it in DD-MM-YYYY.
// Recognizes literal "08-08-2024" and spelled-out forms like "8 august 2024".
func FindDate(text string) (string, bool) {
	text = strings.ToLower(text)

	if m := literalDateRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}

	if m := wordDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := months[m[2]]
		year := DefaultYear
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if day < 1 || day > 31 {
			return "", false
		}
		return fmt.Sprintf("%02d-%02d-%04d", day, month, year), true
	}

	return "", false
}

// FindTime scans free text for a time-of-day mention and returns it in
// 24-hour HH:MM. Recognizes "20:00", "8:30 pm" and "8 pm".
func FindTime(text string) (string, bool) {
	text = strings.ToLower(text)

	if m := clockTimeRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if m[3] != "" {
			hour = to24Hour(hour, m[3])
		}
		if hour > 23 || minute > 59 {
			return "", false
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	if m := hourOnlyRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		hour = to24Hour(hour, m[2])
		if hour > 23 {
			return "", false
		}
		return fmt.Sprintf("%02d:00", hour), true
	}

	return "", false
}

// To12Hour converts a 24-hour "HH:MM" string into "H:MM AM/PM" display form.
func To12Hour(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return hhmm
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// to24Hour applies an am/pm period to an hour value.
func to24Hour(hour int, period string) int {
	switch {
	case period == "pm" && hour != 12:
		return hour + 12
	case period == "am" && hour == 12:
		return 0
	}
	return hour
}
