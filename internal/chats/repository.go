package chats

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository stores chat threads and their message history.
type Repository interface {
	CreateChat(ctx context.Context, title string) (*Chat, error)
	GetChat(ctx context.Context, id string) (*Chat, error)
	ListChats(ctx context.Context) ([]*Chat, error)
	AddMessage(ctx context.Context, chatID, content string, isUser bool) (*Message, error)
	ListMessages(ctx context.Context, chatID string) ([]*Message, error)
}

// InMemoryRepository keeps chats in process memory. It backs tests and
// deployments that run without a database.
type InMemoryRepository struct {
	mu       sync.RWMutex
	chats    map[string]*Chat
	messages map[string][]*Message
	now      func() time.Time
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		chats:    make(map[string]*Chat),
		messages: make(map[string][]*Message),
		now:      time.Now,
	}
}

func (r *InMemoryRepository) CreateChat(_ context.Context, title string) (*Chat, error) {
	if title == "" {
		title = DefaultChatTitle
	}
	chat := &Chat{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: r.now().UTC(),
	}
	r.mu.Lock()
	r.chats[chat.ID] = chat
	r.mu.Unlock()
	return chat, nil
}

func (r *InMemoryRepository) GetChat(_ context.Context, id string) (*Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chat, ok := r.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	return chat, nil
}

func (r *InMemoryRepository) ListChats(_ context.Context) ([]*Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Chat, 0, len(r.chats))
	for _, chat := range r.chats {
		out = append(out, chat)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) AddMessage(_ context.Context, chatID, content string, isUser bool) (*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[chatID]; !ok {
		return nil, ErrChatNotFound
	}
	msg := &Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Content:   content,
		IsUser:    isUser,
		CreatedAt: r.now().UTC(),
	}
	r.messages[chatID] = append(r.messages[chatID], msg)
	return msg, nil
}

func (r *InMemoryRepository) ListMessages(_ context.Context, chatID string) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.chats[chatID]; !ok {
		return nil, ErrChatNotFound
	}
	msgs := r.messages[chatID]
	out := make([]*Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
