package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"crafty/domain"
	"crafty/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileMessage struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"publishedAt"`
}

func toFileMessage(m domain.Message) fileMessage {
	return fileMessage{ID: m.ID, Author: m.Author, Text: m.Text, PublishedAt: m.PublishedAt}
}

func (f fileMessage) toDomain() domain.Message {
	return domain.Message{ID: f.ID, Author: f.Author, Text: f.Text, PublishedAt: f.PublishedAt}
}

// FileMessageRepository stores every message in a single JSON document
// mapping author to messages. The whole file is rewritten on each save;
// it is not safe across processes.
type FileMessageRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileMessageRepository(dir string) *FileMessageRepository {
	return &FileMessageRepository{path: filepath.Join(dir, "messages.json")}
}

func (r *FileMessageRepository) Save(_ context.Context, message domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byAuthor, err := r.read()
	if err != nil {
		return err
	}

	ofAuthor := byAuthor[message.Author]
	replaced := false
	for i, existing := range ofAuthor {
		if existing.ID == message.ID {
			ofAuthor[i] = toFileMessage(message)
			replaced = true
			break
		}
	}
	if !replaced {
		ofAuthor = append(ofAuthor, toFileMessage(message))
	}
	byAuthor[message.Author] = ofAuthor

	return r.write(byAuthor)
}

func (r *FileMessageRepository) GetByID(_ context.Context, id string) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byAuthor, err := r.read()
	if err != nil {
		return domain.Message{}, err
	}
	for _, messages := range byAuthor {
		for _, message := range messages {
			if message.ID == id {
				return message.toDomain(), nil
			}
		}
	}
	return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
}

func (r *FileMessageRepository) GetAllOfUser(_ context.Context, author string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byAuthor, err := r.read()
	if err != nil {
		return nil, err
	}
	return lo.Map(byAuthor[author], func(m fileMessage, _ int) domain.Message {
		return m.toDomain()
	}), nil
}

// read loads the whole document. A missing file means an empty store.
func (r *FileMessageRepository) read() (map[string][]fileMessage, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return make(map[string][]fileMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	byAuthor := make(map[string][]fileMessage)
	if err := json.Unmarshal(data, &byAuthor); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.path, err)
	}
	return byAuthor, nil
}

func (r *FileMessageRepository) write(byAuthor map[string][]fileMessage) error {
	data, err := json.MarshalIndent(byAuthor, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

// FileFolloweeRepository stores follow edges as a user -> followees JSON
// document, rewritten wholesale on each save.
type FileFolloweeRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileFolloweeRepository(dir string) *FileFolloweeRepository {
	return &FileFolloweeRepository{path: filepath.Join(dir, "followees.json")}
}

func (r *FileFolloweeRepository) SaveFollowee(_ context.Context, followee domain.Followee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byUser, err := r.read()
	if err != nil {
		return err
	}
	existing := byUser[followee.User]
	if lo.Contains(existing, followee.Followee) {
		return nil
	}
	byUser[followee.User] = append(existing, followee.Followee)

	data, err := json.MarshalIndent(byUser, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *FileFolloweeRepository) GetFolloweesOf(_ context.Context, user string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byUser, err := r.read()
	if err != nil {
		return nil, err
	}
	return byUser[user], nil
}

func (r *FileFolloweeRepository) read() (map[string][]string, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return make(map[string][]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	byUser := make(map[string][]string)
	if err := json.Unmarshal(data, &byUser); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.path, err)
	}
	return byUser, nil
}

// FileUserRepository stores the set of known user names as a JSON array.
type FileUserRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileUserRepository(dir string) *FileUserRepository {
	return &FileUserRepository{path: filepath.Join(dir, "users.json")}
}

func (r *FileUserRepository) CreateUser(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := os.ReadFile(r.path)
	var names []string
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("reading %s: %w", r.path, err)
	default:
		if err := json.Unmarshal(data, &names); err != nil {
			return fmt.Errorf("decoding %s: %w", r.path, err)
		}
	}
	if lo.Contains(names, name) {
		return nil
	}
	names = append(names, name)

	out, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, out, 0o644)
}
