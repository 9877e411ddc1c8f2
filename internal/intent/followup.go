package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pluang/hrbuddy/internal/domain"
)

// topics is scanned in order; the first containment match wins even when a
// later topic also appears in the message.
var topics = []string{"leave", "holiday", "benefit", "policy", "hours"}

var (
	vaguePattern    = regexp.MustCompile(`\b(any more|tell me more|what else|more info)\b`)
	numberedPattern = regexp.MustCompile(`\b(1st|first|2nd|second|3rd|third|4th|fourth)\b`)
)

// TagTopic returns the first known topic keyword contained in the message,
// or "" when none matches.
func TagTopic(message string) string {
	lower := strings.ToLower(message)
	for _, t := range topics {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return ""
}

// EffectiveQuery resolves vague and numbered follow-ups into the query that
// is actually sent to generation. mem must reflect any topic tagging already
// applied for this turn. At most one rewrite applies, vague first; otherwise
// the literal message is returned unchanged.
func EffectiveQuery(message string, mem domain.SessionMemory) string {
	lower := strings.ToLower(message)

	if vaguePattern.MatchString(lower) && mem.LastTopic != "" {
		return fmt.Sprintf("Give me more details about %s.", mem.LastTopic)
	}
	if numberedPattern.MatchString(lower) && mem.LastAIMessage != "" {
		return fmt.Sprintf(
			"The user said %q. Based on the previous AI message: %q, determine which option they meant and continue accordingly.",
			message, mem.LastAIMessage,
		)
	}
	return message
}
