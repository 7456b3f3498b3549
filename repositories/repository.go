//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repositories.go -package=mocks
package repositories

import (
	"context"

	"crafty/domain"
)

// IMessageRepository persists messages. Save is an upsert keyed by the
// message ID: the same call handles both the initial post and later edits.
type IMessageRepository interface {
	Save(ctx context.Context, message domain.Message) error
	GetByID(ctx context.Context, id string) (domain.Message, error)
	GetAllOfUser(ctx context.Context, author string) ([]domain.Message, error)
}

// IFolloweeRepository persists directed follow edges. Saving the same
// edge twice leaves a single entry.
type IFolloweeRepository interface {
	SaveFollowee(ctx context.Context, followee domain.Followee) error
	GetFolloweesOf(ctx context.Context, user string) ([]string, error)
}

// IUserRepository persists user records. CreateUser is an idempotent
// upsert: creating the same name twice is not an error.
type IUserRepository interface {
	CreateUser(ctx context.Context, name string) error
}
