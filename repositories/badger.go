package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"crafty/domain"
	"crafty/errors"
)

type badgerMessage struct {
	ID          string
	Author      string
	Text        string
	PublishedAt int64 // unix nanoseconds, UTC
}

// BadgerMessageRepository persists messages in BadgerDB under two keys:
//
//	msgid:{id}                        -> msgpack record (primary)
//	msg:{author}:{timestamp_padded}:{id} -> id (author index)
//
// The 19-digit zero padded timestamp keeps the author index in
// chronological order under lexicographic iteration.
type BadgerMessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerMessageRepository(db *badger.DB, log *slog.Logger) *BadgerMessageRepository {
	return &BadgerMessageRepository{db: db, log: log}
}

func (r *BadgerMessageRepository) Save(_ context.Context, message domain.Message) error {
	record := badgerMessage{
		ID:          message.ID,
		Author:      message.Author,
		Text:        message.Text,
		PublishedAt: message.PublishedAt.UnixNano(),
	}
	value, err := msgpack.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	indexKey := fmt.Sprintf("msg:%s:%019d:%s", message.Author, message.PublishedAt.UnixNano(), message.ID)

	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("msgid:"+message.ID), value); err != nil {
			return err
		}
		// An edit rewrites the same index key since the publication
		// time never changes.
		return txn.Set([]byte(indexKey), []byte(message.ID))
	})
}

func (r *BadgerMessageRepository) GetByID(_ context.Context, id string) (domain.Message, error) {
	var record badgerMessage
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("msgid:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return msgpack.Unmarshal(value, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
	}
	if err != nil {
		return domain.Message{}, err
	}
	return record.toDomain(), nil
}

func (r *BadgerMessageRepository) GetAllOfUser(_ context.Context, author string) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", author))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id []byte
			if err := it.Item().Value(func(value []byte) error {
				id = append([]byte(nil), value...)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get(append([]byte("msgid:"), id...))
			if err != nil {
				return err
			}
			var record badgerMessage
			if err := item.Value(func(value []byte) error {
				return msgpack.Unmarshal(value, &record)
			}); err != nil {
				return err
			}
			messages = append(messages, record.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("fetched messages", "author", author, "count", len(messages))
	return messages, nil
}

func (m badgerMessage) toDomain() domain.Message {
	return domain.Message{
		ID:          m.ID,
		Author:      m.Author,
		Text:        m.Text,
		PublishedAt: time.Unix(0, m.PublishedAt).UTC(),
	}
}

// BadgerFolloweeRepository stores one key per follow edge:
//
//	follow:{user}:{followee} -> empty
//
// Storing the same edge twice overwrites the same key, which gives the
// dedupe guarantee for free.
type BadgerFolloweeRepository struct {
	db *badger.DB
}

func NewBadgerFolloweeRepository(db *badger.DB) *BadgerFolloweeRepository {
	return &BadgerFolloweeRepository{db: db}
}

func (r *BadgerFolloweeRepository) SaveFollowee(_ context.Context, followee domain.Followee) error {
	key := fmt.Sprintf("follow:%s:%s", followee.User, followee.Followee)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), nil)
	})
}

func (r *BadgerFolloweeRepository) GetFolloweesOf(_ context.Context, user string) ([]string, error) {
	var followees []string
	prefixStr := fmt.Sprintf("follow:%s:", user)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(prefixStr)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			followees = append(followees, key[len(prefixStr):])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return followees, nil
}

// BadgerUserRepository stores one key per user name. Re-creating a user
// overwrites the same key.
type BadgerUserRepository struct {
	db *badger.DB
}

func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func (r *BadgerUserRepository) CreateUser(_ context.Context, name string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("user:"+name), nil)
	})
}
