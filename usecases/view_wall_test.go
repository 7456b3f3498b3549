package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"crafty/clock"
	"crafty/domain"
	"crafty/mocks"
	"crafty/projection"
	"crafty/repositories"
)

func TestViewWallUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, time.February, 7, 16, 30, 0, 0, time.UTC)

	t.Run("should merge the user's and the followees' messages, most recent first", func(t *testing.T) {
		req := require.New(t)
		messageRepository := repositories.NewInMemoryMessageRepository()
		messageRepository.GivenExistingMessages(
			domain.Message{ID: "1", Author: "Alice", Text: "I love the weather today", PublishedAt: now.Add(-15 * time.Minute)},
			domain.Message{ID: "2", Author: "Bob", Text: "Damn! We lost!", PublishedAt: now.Add(-4 * time.Minute)},
			domain.Message{ID: "3", Author: "Charlie", Text: "I'm in New York today!", PublishedAt: now.Add(-2 * time.Minute)},
		)
		followeeRepository := repositories.NewInMemoryFolloweeRepository()
		followeeRepository.GivenExistingFollowees(domain.Followee{User: "Charlie", Followee: "Alice"})
		dateProvider := &clock.StubDateProvider{Instant: now}
		useCase := NewViewWallUseCase(messageRepository, followeeRepository, dateProvider)

		wall, err := useCase.Handle(ctx, "Charlie")

		req.NoError(err)
		req.Equal("Charlie", wall.User)
		req.Equal([]string{"Alice"}, wall.Following)
		req.Equal([]projection.Entry{
			{Author: "Charlie", Text: "I'm in New York today!", PublicationTime: "2 minutes ago"},
			{Author: "Alice", Text: "I love the weather today", PublicationTime: "15 minutes ago"},
		}, wall.Messages)
	})

	t.Run("should equal the user's own timeline when they follow nobody", func(t *testing.T) {
		req := require.New(t)
		messageRepository := repositories.NewInMemoryMessageRepository()
		messageRepository.GivenExistingMessages(
			domain.Message{ID: "1", Author: "Alice", Text: "Hello World", PublishedAt: now.Add(-time.Minute)},
			domain.Message{ID: "2", Author: "Bob", Text: "not on this wall", PublishedAt: now},
		)
		followeeRepository := repositories.NewInMemoryFolloweeRepository()
		dateProvider := &clock.StubDateProvider{Instant: now}
		useCase := NewViewWallUseCase(messageRepository, followeeRepository, dateProvider)

		wall, err := useCase.Handle(ctx, "Alice")

		req.NoError(err)
		req.Empty(wall.Following)

		timeline, err := NewViewTimelineUseCase(messageRepository, dateProvider).Handle(ctx, "Alice")
		req.NoError(err)
		req.Equal(timeline, wall.Messages)
	})

	t.Run("should fail the whole wall when one author fetch fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMessages := mocks.NewMockIMessageRepository(ctrl)
		mockFollowees := mocks.NewMockIFolloweeRepository(ctrl)
		dateProvider := &clock.StubDateProvider{Instant: now}
		useCase := NewViewWallUseCase(mockMessages, mockFollowees, dateProvider)

		storageErr := fmt.Errorf("disk on fire")
		mockFollowees.EXPECT().
			GetFolloweesOf(gomock.Any(), "Charlie").
			Return([]string{"Alice"}, nil).
			Times(1)
		mockMessages.EXPECT().
			GetAllOfUser(gomock.Any(), "Charlie").
			Return([]domain.Message{{ID: "1", Author: "Charlie", Text: "hi", PublishedAt: now}}, nil).
			Times(1)
		mockMessages.EXPECT().
			GetAllOfUser(gomock.Any(), "Alice").
			Return(nil, storageErr).
			Times(1)

		_, err := useCase.Handle(ctx, "Charlie")

		req.ErrorIs(err, storageErr)
	})

	t.Run("should fail when the followee lookup fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMessages := mocks.NewMockIMessageRepository(ctrl)
		mockFollowees := mocks.NewMockIFolloweeRepository(ctrl)
		useCase := NewViewWallUseCase(mockMessages, mockFollowees, &clock.StubDateProvider{Instant: now})

		storageErr := fmt.Errorf("disk on fire")
		mockFollowees.EXPECT().
			GetFolloweesOf(gomock.Any(), "Charlie").
			Return(nil, storageErr).
			Times(1)
		mockMessages.EXPECT().GetAllOfUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := useCase.Handle(ctx, "Charlie")

		req.ErrorIs(err, storageErr)
	})
}
