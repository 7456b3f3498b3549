package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"crafty/domain"
	"crafty/errors"
)

func openTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBadgerMessageRepository_SaveAndGetByID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestBadger(t)
	repository := NewBadgerMessageRepository(db, slog.Default())

	at := time.Date(2023, time.January, 19, 19, 0, 0, 0, time.UTC)
	message := domain.Message{ID: "message-id", Author: "Alice", Text: "Hello World", PublishedAt: at}

	req.NoError(repository.Save(ctx, message))

	fetched, err := repository.GetByID(ctx, "message-id")
	req.NoError(err)
	req.Equal(message, fetched)

	_, err = repository.GetByID(ctx, "missing-id")
	req.ErrorIs(err, errors.ErrMessageNotFound)
	req.ErrorContains(err, "missing-id")
}

func TestBadgerMessageRepository_GetAllOfUser(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestBadger(t)
	repository := NewBadgerMessageRepository(db, slog.Default())

	at := time.Date(2023, time.January, 19, 19, 0, 0, 0, time.UTC)
	messages := []domain.Message{
		{ID: "1", Author: "Alice", Text: "one", PublishedAt: at},
		{ID: "2", Author: "Bob", Text: "two", PublishedAt: at.Add(time.Minute)},
		{ID: "3", Author: "Alice", Text: "three", PublishedAt: at.Add(2 * time.Minute)},
	}
	for _, message := range messages {
		req.NoError(repository.Save(ctx, message))
	}

	ofAlice, err := repository.GetAllOfUser(ctx, "Alice")
	req.NoError(err)
	// The author index is chronological thanks to the padded timestamp.
	req.Equal([]domain.Message{messages[0], messages[2]}, ofAlice)

	ofNobody, err := repository.GetAllOfUser(ctx, "Nobody")
	req.NoError(err)
	req.Empty(ofNobody)
}

func TestBadgerMessageRepository_SaveIsAnUpsert(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestBadger(t)
	repository := NewBadgerMessageRepository(db, slog.Default())

	at := time.Date(2023, time.January, 19, 19, 0, 0, 0, time.UTC)
	message := domain.Message{ID: "message-id", Author: "Alice", Text: "Hello Wrld", PublishedAt: at}
	req.NoError(repository.Save(ctx, message))

	message.Text = "Hello World"
	req.NoError(repository.Save(ctx, message))

	ofAlice, err := repository.GetAllOfUser(ctx, "Alice")
	req.NoError(err)
	req.Len(ofAlice, 1)
	req.Equal("Hello World", ofAlice[0].Text)
}

func TestBadgerFolloweeRepository_DeduplicatesEdges(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestBadger(t)
	repository := NewBadgerFolloweeRepository(db)

	req.NoError(repository.SaveFollowee(ctx, domain.Followee{User: "Charlie", Followee: "Alice"}))
	req.NoError(repository.SaveFollowee(ctx, domain.Followee{User: "Charlie", Followee: "Alice"}))
	req.NoError(repository.SaveFollowee(ctx, domain.Followee{User: "Charlie", Followee: "Bob"}))

	followees, err := repository.GetFolloweesOf(ctx, "Charlie")
	req.NoError(err)
	req.Equal([]string{"Alice", "Bob"}, followees)

	none, err := repository.GetFolloweesOf(ctx, "Alice")
	req.NoError(err)
	req.Empty(none)
}

func TestBadgerUserRepository_IsIdempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestBadger(t)
	repository := NewBadgerUserRepository(db)

	req.NoError(repository.CreateUser(ctx, "Alice"))
	req.NoError(repository.CreateUser(ctx, "Alice"))
}
