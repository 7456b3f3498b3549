package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"crafty/repositories"
)

func TestFollowUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should record a directed edge", func(t *testing.T) {
		req := require.New(t)
		followeeRepository := repositories.NewInMemoryFolloweeRepository()
		useCase := NewFollowUserUseCase(followeeRepository)

		req.NoError(useCase.Handle(ctx, FollowUserCommand{User: "Alice", UserToFollow: "Bob"}))
		req.NoError(useCase.Handle(ctx, FollowUserCommand{User: "Alice", UserToFollow: "Charlie"}))

		followees, err := followeeRepository.GetFolloweesOf(ctx, "Alice")
		req.NoError(err)
		req.Equal([]string{"Bob", "Charlie"}, followees)

		// the edge is directed
		followees, err = followeeRepository.GetFolloweesOf(ctx, "Bob")
		req.NoError(err)
		req.Empty(followees)
	})

	t.Run("should keep a single edge when the same follow is saved twice", func(t *testing.T) {
		req := require.New(t)
		followeeRepository := repositories.NewInMemoryFolloweeRepository()
		useCase := NewFollowUserUseCase(followeeRepository)

		req.NoError(useCase.Handle(ctx, FollowUserCommand{User: "Alice", UserToFollow: "Bob"}))
		req.NoError(useCase.Handle(ctx, FollowUserCommand{User: "Alice", UserToFollow: "Bob"}))

		followees, err := followeeRepository.GetFolloweesOf(ctx, "Alice")
		req.NoError(err)
		req.Equal([]string{"Bob"}, followees)
	})
}
