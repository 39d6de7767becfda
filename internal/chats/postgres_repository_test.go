package chats

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCreateChat(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	createdAt := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO chats").
		WithArgs(pgxmock.AnyArg(), "بحث عن فيلا").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	repo := NewPostgresRepository(mock)
	chat, err := repo.CreateChat(context.Background(), "بحث عن فيلا")
	require.NoError(t, err)
	assert.Equal(t, "بحث عن فيلا", chat.Title)
	assert.Equal(t, createdAt, chat.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetChatNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, title, created_at").
		WithArgs("abc").
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "created_at"}))

	repo := NewPostgresRepository(mock)
	_, err = repo.GetChat(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestPostgresListMessages(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, chat_id, content, is_user, created_at").
		WithArgs("chat-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "chat_id", "content", "is_user", "created_at"}).
			AddRow("m1", "chat-1", "عايز شقة", true, now).
			AddRow("m2", "chat-1", "في أي منطقة؟", false, now.Add(time.Second)))

	repo := NewPostgresRepository(mock)
	msgs, err := repo.ListMessages(context.Background(), "chat-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "عايز شقة", msgs[0].Content)
	assert.False(t, msgs[1].IsUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAddMessage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO chat_messages").
		WithArgs(pgxmock.AnyArg(), "chat-1", "تمام", false).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewPostgresRepository(mock)
	msg, err := repo.AddMessage(context.Background(), "chat-1", "تمام", false)
	require.NoError(t, err)
	assert.Equal(t, "chat-1", msg.ChatID)
	assert.Equal(t, now, msg.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
