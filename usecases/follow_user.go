package usecases

import (
	"context"

	"crafty/domain"
	"crafty/repositories"
)

type FollowUserCommand struct {
	User         string
	UserToFollow string
}

// FollowUserUseCase records a directed follow edge. Neither name is
// checked for existence and self-follows are accepted.
type FollowUserUseCase struct {
	followeeRepository repositories.IFolloweeRepository
}

func NewFollowUserUseCase(followeeRepository repositories.IFolloweeRepository) *FollowUserUseCase {
	return &FollowUserUseCase{followeeRepository: followeeRepository}
}

func (uc *FollowUserUseCase) Handle(ctx context.Context, cmd FollowUserCommand) error {
	return uc.followeeRepository.SaveFollowee(ctx, domain.Followee{
		User:     cmd.User,
		Followee: cmd.UserToFollow,
	})
}
