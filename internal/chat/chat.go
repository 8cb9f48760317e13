// Package chat holds the in-memory transcript of a chat session: the
// messages the user submitted and the replies shown against them. It
// owns no network or provider logic.
package chat

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID   string
	Role Role
	Text string
	Time time.Time
}

// Transcript is an append-only message list for one session.
type Transcript struct {
	msgs []Message
}

// Append adds a message and returns it with its generated id.
func (t *Transcript) Append(role Role, text string) Message {
	msg := Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		Time: time.Now(),
	}
	t.msgs = append(t.msgs, msg)
	return msg
}

// Messages returns the transcript in arrival order. The slice is shared,
// callers must not mutate it.
func (t *Transcript) Messages() []Message {
	return t.msgs
}

func (t *Transcript) Len() int {
	return len(t.msgs)
}
