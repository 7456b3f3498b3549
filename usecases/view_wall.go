package usecases

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"crafty/clock"
	"crafty/domain"
	"crafty/projection"
	"crafty/repositories"
)

// Wall is the aggregated view of a user plus everyone they follow.
type Wall struct {
	User      string             `json:"user"`
	Messages  []projection.Entry `json:"messages"`
	Following []string           `json:"following"`
}

// ViewWallUseCase merges the timelines of a user and all their followees
// into one globally sorted sequence. Per-author fetches are independent
// and run concurrently; any fetch failure fails the whole wall.
type ViewWallUseCase struct {
	messageRepository  repositories.IMessageRepository
	followeeRepository repositories.IFolloweeRepository
	dateProvider       clock.IDateProvider
}

func NewViewWallUseCase(
	messageRepository repositories.IMessageRepository,
	followeeRepository repositories.IFolloweeRepository,
	dateProvider clock.IDateProvider,
) *ViewWallUseCase {
	return &ViewWallUseCase{
		messageRepository:  messageRepository,
		followeeRepository: followeeRepository,
		dateProvider:       dateProvider,
	}
}

func (uc *ViewWallUseCase) Handle(ctx context.Context, user string) (Wall, error) {
	followees, err := uc.followeeRepository.GetFolloweesOf(ctx, user)
	if err != nil {
		return Wall{}, err
	}
	if followees == nil {
		followees = []string{}
	}
	authors := append([]string{user}, followees...)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		fetchErr error
		messages []domain.Message
	)
	for _, author := range authors {
		wg.Add(1)
		go func(author string) {
			defer wg.Done()
			ofAuthor, err := uc.messageRepository.GetAllOfUser(ctx, author)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fetchErr = multierr.Append(fetchErr, err)
				return
			}
			messages = append(messages, ofAuthor...)
		}(author)
	}
	wg.Wait()
	if fetchErr != nil {
		return Wall{}, fetchErr
	}

	return Wall{
		User:      user,
		Messages:  projection.BuildTimeline(messages, uc.dateProvider.Now()),
		Following: followees,
	}, nil
}
