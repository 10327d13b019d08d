package store

import (
	"context"
	"errors"

	"github.com/lumenasoft/usersvc/internal/users/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx/WithTx pair so mutating operations run atomically.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by primary key.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used for the login lookup and uniqueness pre-checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user ordered by id. No pagination; the list
	// endpoint is defined as a full-table scan.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user and returns the store-assigned id.
	// A duplicate email surfaces as ErrAlreadyExists via the unique constraint.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateUser writes every mutable column of u; callers merge partial
	// payloads into a loaded record first.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser physically removes the row.
	DeleteUser(ctx context.Context, id int64) error
}
