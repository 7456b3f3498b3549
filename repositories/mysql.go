package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"crafty/domain"
	"crafty/errors"
)

// MySQL schema. Follow edges live in a separate relation table so the
// primary key gives edge dedupe for free.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		name VARCHAR(191) NOT NULL,
		PRIMARY KEY (name)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id VARCHAR(191) NOT NULL,
		author VARCHAR(191) NOT NULL,
		text TEXT NOT NULL,
		published_at DATETIME(6) NOT NULL,
		PRIMARY KEY (id),
		CONSTRAINT fk_messages_author FOREIGN KEY (author) REFERENCES users (name)
	)`,
	`CREATE TABLE IF NOT EXISTS followees (
		follower VARCHAR(191) NOT NULL,
		followee VARCHAR(191) NOT NULL,
		PRIMARY KEY (follower, followee),
		CONSTRAINT fk_followees_follower FOREIGN KEY (follower) REFERENCES users (name),
		CONSTRAINT fk_followees_followee FOREIGN KEY (followee) REFERENCES users (name)
	)`,
}

// InitMySQLSchema creates the tables when they do not exist yet.
func InitMySQLSchema(ctx context.Context, db *sql.DB) error {
	for _, statement := range mysqlSchema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}
	return nil
}

// MySQLMessageRepository persists messages in a relational store. Saving
// upserts the author row first so the foreign key always resolves, and
// runs both steps in one transaction.
type MySQLMessageRepository struct {
	db *sql.DB
}

func NewMySQLMessageRepository(db *sql.DB) *MySQLMessageRepository {
	return &MySQLMessageRepository{db: db}
}

func (r *MySQLMessageRepository) Save(ctx context.Context, message domain.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT IGNORE INTO users (name) VALUES (?)", message.Author); err != nil {
		return fmt.Errorf("upsert author failed: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO messages (id, author, text, published_at) VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE text = VALUES(text)`,
		message.ID, message.Author, message.Text, message.PublishedAt); err != nil {
		return fmt.Errorf("upsert message failed: %w", err)
	}
	return tx.Commit()
}

func (r *MySQLMessageRepository) GetByID(ctx context.Context, id string) (domain.Message, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, author, text, published_at FROM messages WHERE id = ?", id)

	var message domain.Message
	err := row.Scan(&message.ID, &message.Author, &message.Text, &message.PublishedAt)
	if err == sql.ErrNoRows {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
	}
	if err != nil {
		return domain.Message{}, err
	}
	message.PublishedAt = message.PublishedAt.UTC()
	return message, nil
}

func (r *MySQLMessageRepository) GetAllOfUser(ctx context.Context, author string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, author, text, published_at FROM messages WHERE author = ?", author)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(&message.ID, &message.Author, &message.Text, &message.PublishedAt); err != nil {
			return nil, err
		}
		message.PublishedAt = message.PublishedAt.UTC()
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// MySQLFolloweeRepository persists follow edges. Both user rows are
// upserted together with the edge inside a single transaction, so a crash
// cannot leave a user without its edge.
type MySQLFolloweeRepository struct {
	db *sql.DB
}

func NewMySQLFolloweeRepository(db *sql.DB) *MySQLFolloweeRepository {
	return &MySQLFolloweeRepository{db: db}
}

func (r *MySQLFolloweeRepository) SaveFollowee(ctx context.Context, followee domain.Followee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, name := range []string{followee.User, followee.Followee} {
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO users (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("upsert user failed: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT IGNORE INTO followees (follower, followee) VALUES (?, ?)",
		followee.User, followee.Followee); err != nil {
		return fmt.Errorf("insert edge failed: %w", err)
	}
	return tx.Commit()
}

func (r *MySQLFolloweeRepository) GetFolloweesOf(ctx context.Context, user string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT followee FROM followees WHERE follower = ?", user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followees []string
	for rows.Next() {
		var followee string
		if err := rows.Scan(&followee); err != nil {
			return nil, err
		}
		followees = append(followees, followee)
	}
	return followees, rows.Err()
}

// MySQLUserRepository persists user rows. INSERT IGNORE makes CreateUser
// idempotent.
type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) CreateUser(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, "INSERT IGNORE INTO users (name) VALUES (?)", name)
	return err
}
