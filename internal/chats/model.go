package chats

import (
	"errors"
	"time"
)

// ErrChatNotFound is returned when a chat ID does not exist.
var ErrChatNotFound = errors.New("chat not found")

// Chat is one conversation thread with the agent.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single turn inside a chat. IsUser distinguishes what the
// visitor wrote from what the agent replied.
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"timestamp"`
}

// DefaultChatTitle names chats created implicitly by the first message.
const DefaultChatTitle = "Real Estate Chat"
