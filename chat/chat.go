// Package chat implements the state transitions for direct-message threads.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"chucklechain/domain"
)

// SendMessage appends a message from senderID to conv and refreshes
// LastMessage so it always mirrors the tail of Messages. Blank or
// whitespace-only text is rejected before any construction; the second
// return reports whether a message was sent.
func SendMessage(conv domain.Conversation, senderID, text string) (domain.Conversation, bool) {
	if strings.TrimSpace(text) == "" {
		return conv, false
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
	}

	messages := make([]domain.Message, 0, len(conv.Messages)+1)
	messages = append(messages, conv.Messages...)
	conv.Messages = append(messages, msg)
	conv.LastMessage = domain.LastMessage{Text: msg.Text, Timestamp: msg.Timestamp}
	return conv, true
}

// Replace splices updated back into the conversation list by id. Callers that
// track an active conversation must point it at the same updated value so the
// list and the active pane stay consistent.
func Replace(convs []domain.Conversation, updated domain.Conversation) []domain.Conversation {
	out := make([]domain.Conversation, len(convs))
	copy(out, convs)
	for i, c := range out {
		if c.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}
