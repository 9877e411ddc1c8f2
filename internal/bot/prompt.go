package bot

import (
	"fmt"

	"github.com/pluang/hrbuddy/internal/domain"
)

const promptTemplate = `You are "HR Buddy" — a polite, conversational HR assistant.

Use this HR information as your source of truth:
%s

Conversation context:
- Last topic: %s
- Last user message: %s
- Last AI message: %s

User message: %s

Guidelines:
- If the user says "1st one", "second", or "3rd one", infer which option from the previous AI message they meant.
- If vague ("any more", "tell me more", "what else"), elaborate naturally on the last discussed topic.
- If user asks to "repeat", reuse last response.
- Always be friendly, concise, and clear.
`

// composePrompt assembles the fallback prompt from the reference document,
// the session's memory and the effective query. Built fresh every turn.
func composePrompt(refDoc string, mem domain.SessionMemory, query string) string {
	return fmt.Sprintf(promptTemplate,
		refDoc,
		orNone(mem.LastTopic),
		orNone(mem.Context),
		orNone(mem.LastAIMessage),
		query,
	)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
