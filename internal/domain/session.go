package domain

// Context sentinels. Outside the sentinels, SessionMemory.Context holds the
// raw text of the last user message routed to fallback generation.
const (
	ContextAwaitingLeaveDate = "awaiting_leave_date"
	ContextLeaveApplied      = "leave_applied"
)

// SessionMemory is the per-session conversational state. It lives only for
// the process lifetime and is created lazily on a session's first message.
type SessionMemory struct {
	Context       string
	LastTopic     string
	LastAIMessage string
}

// AwaitingDate reports whether the session is in the pending-date sub-state
// of an in-progress leave application.
func (m *SessionMemory) AwaitingDate() bool {
	return m.Context == ContextAwaitingLeaveDate
}
