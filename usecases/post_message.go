// Package usecases wires the domain, clock and repository ports into the
// operations the interface layers expose. Each use case is a single
// orchestration step; failures from the ports are propagated unchanged.
package usecases

import (
	"context"

	"crafty/clock"
	"crafty/domain"
	"crafty/repositories"
)

type PostMessageCommand struct {
	ID     string
	Author string
	Text   string
}

// PostMessageUseCase records a new message stamped with the provider's
// current time. The caller supplies the id.
type PostMessageUseCase struct {
	messageRepository repositories.IMessageRepository
	dateProvider      clock.IDateProvider
}

func NewPostMessageUseCase(messageRepository repositories.IMessageRepository, dateProvider clock.IDateProvider) *PostMessageUseCase {
	return &PostMessageUseCase{messageRepository: messageRepository, dateProvider: dateProvider}
}

func (uc *PostMessageUseCase) Handle(ctx context.Context, cmd PostMessageCommand) error {
	message, err := domain.NewMessage(cmd.ID, cmd.Author, cmd.Text, uc.dateProvider.Now())
	if err != nil {
		return err
	}
	return uc.messageRepository.Save(ctx, message)
}
