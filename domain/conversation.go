package domain

import "time"

// Conversation is an ordered message thread between the session user and one
// other user. LastMessage always mirrors the tail of Messages after any append.
type Conversation struct {
	ID          string
	User        User
	Messages    []Message
	LastMessage LastMessage
}

// LastMessage is the summary shown in the conversation list.
type LastMessage struct {
	Text      string
	Timestamp time.Time
}

// Message is a single direct message. Messages are append-only with
// non-decreasing timestamps by construction.
type Message struct {
	ID        string
	SenderID  string
	Text      string
	Timestamp time.Time
}
