package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"crafty/domain"
	"crafty/errors"
)

// InMemoryMessageRepository keeps every message in a process-local map.
// Guarded by a RWMutex so it stays safe under concurrent requests.
type InMemoryMessageRepository struct {
	mu       sync.RWMutex
	messages map[string]domain.Message
}

func NewInMemoryMessageRepository() *InMemoryMessageRepository {
	return &InMemoryMessageRepository{messages: make(map[string]domain.Message)}
}

func (r *InMemoryMessageRepository) Save(_ context.Context, message domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[message.ID] = message
	return nil
}

func (r *InMemoryMessageRepository) GetByID(_ context.Context, id string) (domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	message, ok := r.messages[id]
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
	}
	return message, nil
}

func (r *InMemoryMessageRepository) GetAllOfUser(_ context.Context, author string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ofUser []domain.Message
	for _, message := range r.messages {
		if message.Author == author {
			ofUser = append(ofUser, message)
		}
	}
	return ofUser, nil
}

// GivenExistingMessages seeds the store without going through a use case.
// Test fixture helper.
func (r *InMemoryMessageRepository) GivenExistingMessages(messages ...domain.Message) {
	for _, message := range messages {
		_ = r.Save(context.Background(), message)
	}
}

// InMemoryFolloweeRepository keeps follow edges as a user -> followees map.
// An edge saved twice is stored once.
type InMemoryFolloweeRepository struct {
	mu              sync.RWMutex
	followeesByUser map[string][]string
}

func NewInMemoryFolloweeRepository() *InMemoryFolloweeRepository {
	return &InMemoryFolloweeRepository{followeesByUser: make(map[string][]string)}
}

func (r *InMemoryFolloweeRepository) SaveFollowee(_ context.Context, followee domain.Followee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.followeesByUser[followee.User]
	if lo.Contains(existing, followee.Followee) {
		return nil
	}
	r.followeesByUser[followee.User] = append(existing, followee.Followee)
	return nil
}

func (r *InMemoryFolloweeRepository) GetFolloweesOf(_ context.Context, user string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	followees := make([]string, len(r.followeesByUser[user]))
	copy(followees, r.followeesByUser[user])
	return followees, nil
}

// GivenExistingFollowees seeds follow edges. Test fixture helper.
func (r *InMemoryFolloweeRepository) GivenExistingFollowees(followees ...domain.Followee) {
	for _, followee := range followees {
		_ = r.SaveFollowee(context.Background(), followee)
	}
}

// InMemoryUserRepository records user names.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]struct{}
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]struct{})}
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[name] = struct{}{}
	return nil
}

// Exists reports whether a user has been created. Test helper.
func (r *InMemoryUserRepository) Exists(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[name]
	return ok
}
