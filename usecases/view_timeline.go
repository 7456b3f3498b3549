package usecases

import (
	"context"

	"crafty/clock"
	"crafty/projection"
	"crafty/repositories"
)

// ViewTimelineUseCase returns the display-ready history of a single
// author, most recent first. An author without messages gets an empty
// timeline, not an error.
type ViewTimelineUseCase struct {
	messageRepository repositories.IMessageRepository
	dateProvider      clock.IDateProvider
}

func NewViewTimelineUseCase(messageRepository repositories.IMessageRepository, dateProvider clock.IDateProvider) *ViewTimelineUseCase {
	return &ViewTimelineUseCase{messageRepository: messageRepository, dateProvider: dateProvider}
}

func (uc *ViewTimelineUseCase) Handle(ctx context.Context, user string) ([]projection.Entry, error) {
	messages, err := uc.messageRepository.GetAllOfUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return projection.BuildTimeline(messages, uc.dateProvider.Now()), nil
}
