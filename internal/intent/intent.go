// Package intent classifies incoming chat messages against the fixed set of
// structured HR intents. All functions here are pure: matching never touches
// session state, it only reads it.
package intent

import (
	"regexp"
	"strings"

	"github.com/pluang/hrbuddy/internal/domain"
)

// Kind identifies which structured intent matched a message.
type Kind string

const (
	KindLeaveInquiry     Kind = "leave_inquiry"
	KindLeaveApplication Kind = "leave_application"
	KindPendingDate      Kind = "pending_date"
	KindRepeat           Kind = "repeat"
	KindFallback         Kind = "fallback"
)

var repeatPattern = regexp.MustCompile(`\b(repeat|say that again|same line|again|repeat that)\b`)

// Classify evaluates the intent priority order against a message and the
// session's current memory. First match wins; KindFallback means no
// structured intent matched and the message goes to generation.
//
// The order is deliberate: keyword intents outrank the pending-date
// continuation, so "apply sick leave for 5 Feb" sent while a session is
// awaiting a date starts a fresh application instead of being read as a
// bare date reply.
func Classify(message string, mem domain.SessionMemory) Kind {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "when") && strings.Contains(lower, "sick leave"):
		return KindLeaveInquiry
	case strings.Contains(lower, "apply") && strings.Contains(lower, "leave"):
		return KindLeaveApplication
	case mem.AwaitingDate():
		return KindPendingDate
	case repeatPattern.MatchString(lower) && mem.LastAIMessage != "":
		return KindRepeat
	default:
		return KindFallback
	}
}

// LeaveTypeOf picks the leave type for an application message by substring
// priority: sick beats casual, anything else is unspecified.
func LeaveTypeOf(message string) domain.LeaveType {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "sick"):
		return domain.LeaveSick
	case strings.Contains(lower, "casual"):
		return domain.LeaveCasual
	default:
		return domain.LeaveUnspecified
	}
}
