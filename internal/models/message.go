// Package models defines the data types shared across fitdeck.
package models

// Role identifies the author of a chat message
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "assistant"
)

// ChatMessage is a single turn in the coach transcript.
// Messages are immutable once appended; the transcript is append-only
// for the lifetime of a session and is never persisted.
type ChatMessage struct {
	Role Role
	Text string
}

// NewUserMessage creates a user-authored message
func NewUserMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleUser, Text: text}
}

// NewCoachMessage creates a coach-authored message
func NewCoachMessage(text string) ChatMessage {
	return ChatMessage{Role: RoleCoach, Text: text}
}
