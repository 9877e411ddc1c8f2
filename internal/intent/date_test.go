package intent

import (
	"testing"

	"github.com/pluang/hrbuddy/internal/domain"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		message string
		want    domain.DayToken
	}{
		{"Apply sick leave for 5 Feb", "5 Feb"},
		{"Feb 10", "Feb 10"},
		{"February 5th works for me", "February 5th"},
		{"maybe 12jan", "12jan"},
		{"I need 25 December off", "25 December"},
		{"the 32 Jan", "32 Jan"}, // no calendar validation
		{"5 Feb or 6 Feb", "5 Feb"},
		{"no date here", ""},
		{"month without a day: February", ""},
		{"123 Feb", ""}, // day is 1-2 digits
		{"", ""},
	}

	for _, tt := range tests {
		got := ExtractDate(tt.message)
		if got != tt.want {
			t.Errorf("ExtractDate(%q) = %q, want %q", tt.message, got, tt.want)
		}
		if got.Found() != (tt.want != "") {
			t.Errorf("ExtractDate(%q).Found() = %v", tt.message, got.Found())
		}
	}
}
