package usecases

import (
	"context"

	"crafty/repositories"
)

type EditMessageCommand struct {
	MessageID string
	Text      string
}

// EditMessageUseCase replaces the text of an existing message. The save
// is the same upsert used when posting; the repository distinguishes by id.
type EditMessageUseCase struct {
	messageRepository repositories.IMessageRepository
}

func NewEditMessageUseCase(messageRepository repositories.IMessageRepository) *EditMessageUseCase {
	return &EditMessageUseCase{messageRepository: messageRepository}
}

func (uc *EditMessageUseCase) Handle(ctx context.Context, cmd EditMessageCommand) error {
	message, err := uc.messageRepository.GetByID(ctx, cmd.MessageID)
	if err != nil {
		return err
	}
	if err := message.EditText(cmd.Text); err != nil {
		return err
	}
	return uc.messageRepository.Save(ctx, message)
}
