package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	doctorRe   = regexp.MustCompile(`Dr\.\s+([A-Za-z\s]+)`)
	clock12Re  = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	clock24Re  = regexp.MustCompile(`\b(\d{2}:\d{2})\b`)
	dateOnlyRe = regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`)
)

// Extraction is the partial result of scraping booking parameters out of
// prior handler text. Each field is independently present (non-empty) or
// absent.
type Extraction struct {
	Doctor string // lowercase with spaces
	Date   string // DD-MM-YYYY
	Time   string // HH:MM, 24-hour
}

// Complete reports whether every parameter needed for a direct booking was
// found.
func (e Extraction) Complete() bool {
	return e.Doctor != "" && e.Date != "" && e.Time != ""
}

// Missing names the absent fields for the user-facing failure message.
func (e Extraction) Missing() string {
	return fmt.Sprintf("Doctor: %s, Date: %s, Time: %s", e.Doctor, e.Date, e.Time)
}

// Extract scrapes a doctor name, date, and time out of free text, normally
// the most recent availability answer.
func Extract(text string) Extraction {
	var ext Extraction

	if m := doctorRe.FindStringSubmatch(text); m != nil {
		ext.Doctor = strings.ToLower(strings.TrimSpace(m[1]))
	}

	if m := clock12Re.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		period := strings.ToUpper(m[3])
		if period == "PM" && hour != 12 {
			hour += 12
		} else if period == "AM" && hour == 12 {
			hour = 0
		}
		ext.Time = fmt.Sprintf("%02d:%s", hour, m[2])
	} else if m := clock24Re.FindStringSubmatch(text); m != nil {
		ext.Time = m[1]
	}

	if m := dateOnlyRe.FindStringSubmatch(text); m != nil {
		ext.Date = m[1]
	}

	return ext
}
