// Package domain contains core domain types for the HR Buddy service.
package domain

import (
	"time"
)

// LeaveType categorizes a leave application.
type LeaveType string

const (
	LeaveSick        LeaveType = "sick"
	LeaveCasual      LeaveType = "casual"
	LeaveUnspecified LeaveType = "unspecified"
)

// DayToken is a day-of-month reference extracted verbatim from user text,
// e.g. "5 Feb" or "Feb 10". It is never calendar-validated: "32 Jan" is a
// valid DayToken. The zero value means "no date found".
type DayToken string

// Found reports whether the token holds an extracted date.
func (d DayToken) Found() bool {
	return d != ""
}

// LeaveRecord is one applied leave. Records are immutable once created;
// the store only ever appends.
type LeaveRecord struct {
	ID        int64     `json:"id,omitempty"`
	SessionID string    `json:"session_id"`
	Type      LeaveType `json:"type"`
	Date      DayToken  `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
