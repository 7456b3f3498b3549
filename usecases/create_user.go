package usecases

import (
	"context"

	"crafty/repositories"
)

type CreateUserCommand struct {
	Name string
}

// CreateUserUseCase registers a user name. Creating the same name twice
// is not an error.
type CreateUserUseCase struct {
	userRepository repositories.IUserRepository
}

func NewCreateUserUseCase(userRepository repositories.IUserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{userRepository: userRepository}
}

func (uc *CreateUserUseCase) Handle(ctx context.Context, cmd CreateUserCommand) error {
	return uc.userRepository.CreateUser(ctx, cmd.Name)
}
