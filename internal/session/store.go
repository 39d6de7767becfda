package session

import (
	"context"
	"errors"
	"time"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/agent"
)

// ErrNotFound is returned when no session exists for the given chat ID.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle conversation is kept before it expires.
const DefaultTTL = 24 * time.Hour

// Store persists conversation state between turns.
type Store interface {
	// Get returns the state for a chat, or ErrNotFound.
	Get(ctx context.Context, chatID string) (*agent.State, error)
	// Save writes the state and refreshes its expiry.
	Save(ctx context.Context, chatID string, state *agent.State) error
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, chatID string) error
}
