package internal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/multierr"

	"crafty/repositories"
)

// Repositories is the full set of ports a binary needs.
type Repositories struct {
	Messages  repositories.IMessageRepository
	Followees repositories.IFolloweeRepository
	Users     repositories.IUserRepository
}

// OpenStorage builds the repository set for the configured backend and
// returns a closer that releases the underlying resources. The closer is
// safe to call even when nothing needs closing.
func OpenStorage(ctx context.Context, config Config, log *slog.Logger) (Repositories, func() error, error) {
	noop := func() error { return nil }

	switch config.Storage {
	case "memory":
		return Repositories{
			Messages:  repositories.NewInMemoryMessageRepository(),
			Followees: repositories.NewInMemoryFolloweeRepository(),
			Users:     repositories.NewInMemoryUserRepository(),
		}, noop, nil

	case "file":
		if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
			return Repositories{}, noop, fmt.Errorf("creating data dir: %w", err)
		}
		return Repositories{
			Messages:  repositories.NewFileMessageRepository(config.DataDir),
			Followees: repositories.NewFileFolloweeRepository(config.DataDir),
			Users:     repositories.NewFileUserRepository(config.DataDir),
		}, noop, nil

	case "badger":
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return Repositories{}, noop, fmt.Errorf("database opening failed: %w", err)
		}
		closer := func() error {
			log.Info("Closing BadgerDB...")
			return db.Close()
		}
		return Repositories{
			Messages:  repositories.NewBadgerMessageRepository(db, log),
			Followees: repositories.NewBadgerFolloweeRepository(db),
			Users:     repositories.NewBadgerUserRepository(db),
		}, closer, nil

	case "mysql":
		db, err := sql.Open("mysql", config.MySQLDSN)
		if err != nil {
			return Repositories{}, noop, fmt.Errorf("database opening failed: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			return Repositories{}, noop, multierr.Append(
				fmt.Errorf("database unreachable: %w", err), db.Close())
		}
		if err := repositories.InitMySQLSchema(ctx, db); err != nil {
			return Repositories{}, noop, multierr.Append(err, db.Close())
		}
		closer := func() error {
			log.Info("Closing MySQL pool...")
			return db.Close()
		}
		return Repositories{
			Messages:  repositories.NewMySQLMessageRepository(db),
			Followees: repositories.NewMySQLFolloweeRepository(db),
			Users:     repositories.NewMySQLUserRepository(db),
		}, closer, nil

	default:
		return Repositories{}, noop, fmt.Errorf("unknown storage backend %q", config.Storage)
	}
}
