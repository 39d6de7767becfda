package chats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores chats in the relational database.
type PostgresRepository struct {
	pool db
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool db) *PostgresRepository {
	if pool == nil {
		panic("chats: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) CreateChat(ctx context.Context, title string) (*Chat, error) {
	if title == "" {
		title = DefaultChatTitle
	}
	id := uuid.New()
	query := `
		INSERT INTO chats (id, title)
		VALUES ($1, $2)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query, id, title).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("chats: insert chat failed: %w", err)
	}
	return &Chat{ID: id.String(), Title: title, CreatedAt: createdAt}, nil
}

func (r *PostgresRepository) GetChat(ctx context.Context, id string) (*Chat, error) {
	query := `
		SELECT id, title, created_at
		FROM chats
		WHERE id = $1
	`
	var chat Chat
	if err := r.pool.QueryRow(ctx, query, id).Scan(&chat.ID, &chat.Title, &chat.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("chats: select chat failed: %w", err)
	}
	return &chat, nil
}

func (r *PostgresRepository) ListChats(ctx context.Context) ([]*Chat, error) {
	query := `
		SELECT id, title, created_at
		FROM chats
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("chats: list chats failed: %w", err)
	}
	defer rows.Close()

	var out []*Chat
	for rows.Next() {
		var chat Chat
		if err := rows.Scan(&chat.ID, &chat.Title, &chat.CreatedAt); err != nil {
			return nil, fmt.Errorf("chats: scan chat failed: %w", err)
		}
		out = append(out, &chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chats: iterate chats failed: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) AddMessage(ctx context.Context, chatID, content string, isUser bool) (*Message, error) {
	id := uuid.New()
	query := `
		INSERT INTO chat_messages (id, chat_id, content, is_user)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query, id, chatID, content, isUser).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("chats: insert message failed: %w", err)
	}
	return &Message{
		ID:        id.String(),
		ChatID:    chatID,
		Content:   content,
		IsUser:    isUser,
		CreatedAt: createdAt,
	}, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, chatID string) ([]*Message, error) {
	query := `
		SELECT id, chat_id, content, is_user, created_at
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("chats: list messages failed: %w", err)
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Content, &msg.IsUser, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("chats: scan message failed: %w", err)
		}
		out = append(out, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chats: iterate messages failed: %w", err)
	}
	return out, nil
}
