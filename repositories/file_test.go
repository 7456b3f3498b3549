package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crafty/domain"
	"crafty/errors"
)

func TestFileMessageRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2023, time.January, 19, 19, 0, 0, 0, time.UTC)

	t.Run("round trips messages through the JSON document", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		repository := NewFileMessageRepository(dir)
		message := domain.Message{ID: "message-id", Author: "Alice", Text: "Hello World", PublishedAt: at}

		req.NoError(repository.Save(ctx, message))

		// A fresh instance reads the same document.
		reopened := NewFileMessageRepository(dir)
		fetched, err := reopened.GetByID(ctx, "message-id")
		req.NoError(err)
		req.Equal(message, fetched)
	})

	t.Run("save replaces the entry with the same id", func(t *testing.T) {
		req := require.New(t)
		repository := NewFileMessageRepository(t.TempDir())
		message := domain.Message{ID: "message-id", Author: "Alice", Text: "Hello Wrld", PublishedAt: at}
		req.NoError(repository.Save(ctx, message))

		message.Text = "Hello World"
		req.NoError(repository.Save(ctx, message))

		ofAlice, err := repository.GetAllOfUser(ctx, "Alice")
		req.NoError(err)
		req.Len(ofAlice, 1)
		req.Equal("Hello World", ofAlice[0].Text)
	})

	t.Run("missing file reads as an empty store", func(t *testing.T) {
		req := require.New(t)
		repository := NewFileMessageRepository(t.TempDir())

		ofAlice, err := repository.GetAllOfUser(ctx, "Alice")
		req.NoError(err)
		req.Empty(ofAlice)

		_, err = repository.GetByID(ctx, "missing-id")
		req.ErrorIs(err, errors.ErrMessageNotFound)
	})

	t.Run("rewrites the whole document on every save", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		repository := NewFileMessageRepository(dir)
		req.NoError(repository.Save(ctx, domain.Message{ID: "1", Author: "Alice", Text: "one", PublishedAt: at}))
		req.NoError(repository.Save(ctx, domain.Message{ID: "2", Author: "Bob", Text: "two", PublishedAt: at}))

		data, err := os.ReadFile(filepath.Join(dir, "messages.json"))
		req.NoError(err)
		req.Contains(string(data), "Alice")
		req.Contains(string(data), "Bob")
	})
}

func TestFileFolloweeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and deduplicates edges", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		repository := NewFileFolloweeRepository(dir)

		req.NoError(repository.SaveFollowee(ctx, domain.Followee{User: "Charlie", Followee: "Alice"}))
		req.NoError(repository.SaveFollowee(ctx, domain.Followee{User: "Charlie", Followee: "Alice"}))

		followees, err := NewFileFolloweeRepository(dir).GetFolloweesOf(ctx, "Charlie")
		req.NoError(err)
		req.Equal([]string{"Alice"}, followees)
	})

	t.Run("unknown user has no followees", func(t *testing.T) {
		req := require.New(t)
		repository := NewFileFolloweeRepository(t.TempDir())

		followees, err := repository.GetFolloweesOf(ctx, "Nobody")
		req.NoError(err)
		req.Empty(followees)
	})
}

func TestFileUserRepository_IsIdempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()
	repository := NewFileUserRepository(dir)

	req.NoError(repository.CreateUser(ctx, "Alice"))
	req.NoError(repository.CreateUser(ctx, "Alice"))

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	req.NoError(err)
	req.JSONEq(`["Alice"]`, string(data))
}
