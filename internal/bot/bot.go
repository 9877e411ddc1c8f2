// Package bot routes incoming chat messages: structured leave intents are
// handled directly against the leave store, everything else is delegated to
// the generation backend with an assembled context prompt.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pluang/hrbuddy/internal/domain"
	"github.com/pluang/hrbuddy/internal/gen"
	"github.com/pluang/hrbuddy/internal/intent"
	"github.com/pluang/hrbuddy/internal/session"
	"github.com/pluang/hrbuddy/internal/store"
)

// Canned replies. The leave prompts and confirmations mirror what users of
// the original assistant already see.
const (
	replyNoSickLeave = "You haven't applied for any sick leave yet in this session."
	replyAskDate     = "Please specify the date you want to take the leave. For example, 'Apply sick leave for Feb 5'."
	replyAskAgain    = "Sorry, I didn't catch the date. Please say something like 'Feb 5' or 'February 5th'."
	replyNoInfo      = "Sorry, I couldn't find that information."
)

// Bot orchestrates intent classification, leave handling and fallback
// generation for one message at a time.
type Bot struct {
	repo      store.Repository
	sessions  session.Store
	generator gen.Generator
	refDoc    string
}

// New creates a Bot. refDoc is the serialized HR reference document injected
// into every fallback prompt.
func New(repo store.Repository, sessions session.Store, generator gen.Generator, refDoc string) *Bot {
	return &Bot{
		repo:      repo,
		sessions:  sessions,
		generator: generator,
		refDoc:    refDoc,
	}
}

// Handle processes one user message and returns the reply text.
func (b *Bot) Handle(ctx context.Context, sessionID, message string) (string, error) {
	mem := b.sessions.Get(sessionID)
	kind := intent.Classify(message, mem)
	slog.Debug("message classified", "session_id", sessionID, "intent", string(kind))

	switch kind {
	case intent.KindLeaveInquiry:
		return b.handleLeaveInquiry(ctx, sessionID)
	case intent.KindLeaveApplication:
		return b.handleLeaveApplication(ctx, sessionID, message)
	case intent.KindPendingDate:
		return b.handlePendingDate(ctx, sessionID, message)
	case intent.KindRepeat:
		return mem.LastAIMessage, nil
	default:
		return b.handleFallback(ctx, sessionID, message, mem)
	}
}

func (b *Bot) handleLeaveInquiry(ctx context.Context, sessionID string) (string, error) {
	leaves, err := b.repo.ListLeaves(ctx, sessionID, domain.LeaveSick)
	if err != nil {
		return "", fmt.Errorf("list sick leaves: %w", err)
	}
	if len(leaves) == 0 {
		return replyNoSickLeave, nil
	}

	dates := make([]string, len(leaves))
	for i, l := range leaves {
		dates[i] = string(l.Date)
	}
	return fmt.Sprintf("You have applied sick leave on %s.", strings.Join(dates, ", ")), nil
}

func (b *Bot) handleLeaveApplication(ctx context.Context, sessionID, message string) (string, error) {
	leaveType := intent.LeaveTypeOf(message)
	date := intent.ExtractDate(message)

	if !date.Found() {
		// Two-turn sub-protocol: park the session until a date arrives.
		b.sessions.Update(sessionID, func(m *domain.SessionMemory) {
			m.Context = domain.ContextAwaitingLeaveDate
			m.LastTopic = "leave"
		})
		return replyAskDate, nil
	}

	if err := b.appendLeave(ctx, sessionID, leaveType, date); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Your %s leave for %s has been noted.", leaveType, date), nil
}

func (b *Bot) handlePendingDate(ctx context.Context, sessionID, message string) (string, error) {
	date := intent.ExtractDate(message)
	if !date.Found() {
		// Session stays in the pending state until a parseable date arrives.
		return replyAskAgain, nil
	}

	if err := b.appendLeave(ctx, sessionID, domain.LeaveUnspecified, date); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Noted! Your leave for %s has been applied.", date), nil
}

func (b *Bot) appendLeave(ctx context.Context, sessionID string, leaveType domain.LeaveType, date domain.DayToken) error {
	record := &domain.LeaveRecord{
		SessionID: sessionID,
		Type:      leaveType,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := b.repo.AppendLeave(ctx, record); err != nil {
		return fmt.Errorf("append leave: %w", err)
	}

	b.sessions.Update(sessionID, func(m *domain.SessionMemory) {
		m.Context = domain.ContextLeaveApplied
		m.LastTopic = "leave"
	})

	slog.Info("leave recorded", "session_id", sessionID, "type", string(leaveType), "date", string(date))
	return nil
}

func (b *Bot) handleFallback(ctx context.Context, sessionID, message string, mem domain.SessionMemory) (string, error) {
	if topic := intent.TagTopic(message); topic != "" {
		mem.LastTopic = topic
		b.sessions.Update(sessionID, func(m *domain.SessionMemory) {
			m.LastTopic = topic
		})
	}

	query := intent.EffectiveQuery(message, mem)
	prompt := composePrompt(b.refDoc, mem, query)

	reply, err := b.generator.Generate(ctx, prompt)
	switch {
	case errors.Is(err, gen.ErrNoContent):
		// Malformed response shape degrades to a canned apology; the turn
		// still completes and memory is still updated below.
		reply = replyNoInfo
	case err != nil:
		// Transport failure: surface it and leave session memory untouched.
		return "", fmt.Errorf("generate reply: %w", err)
	}

	// Remember the raw message, not the rewritten query.
	b.sessions.Update(sessionID, func(m *domain.SessionMemory) {
		m.Context = message
		m.LastAIMessage = reply
	})
	return reply, nil
}
