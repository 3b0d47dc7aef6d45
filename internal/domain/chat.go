package domain

import (
	"time"
)

// ChatSender identifies who wrote a chat message.
type ChatSender string

const (
	SenderUser  ChatSender = "user"
	SenderCoach ChatSender = "ai"
)

// ChatMessage is a single entry in the coach conversation history.
type ChatMessage struct {
	ID     string     `json:"id"`
	Sender ChatSender `json:"type"`
	Text   string     `json:"message"`
	SentAt time.Time  `json:"timestamp"`
}
