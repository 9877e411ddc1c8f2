package intent

import (
	"regexp"

	"github.com/pluang/hrbuddy/internal/domain"
)

// dayPattern accepts a 1-2 digit day and a month abbreviation (optionally
// spelled out, e.g. "February") in either order: "5 Feb", "Feb 5",
// "February 5th". The day number is not calendar-validated.
var dayPattern = regexp.MustCompile(`(?i)\b(\d{1,2}\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{1,2}(?:st|nd|rd|th)?)\b`)

// ExtractDate scans raw message text for a day reference and returns the
// first match verbatim. The zero DayToken is returned when nothing matches.
func ExtractDate(message string) domain.DayToken {
	match := dayPattern.FindString(message)
	return domain.DayToken(match)
}
