package store

import (
	"context"
	"database/sql"

	"github.com/avelis/users-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
// Implementations hold no business logic; any rule requiring more context
// than "does this row exist" belongs to the service layer.
type UserStore interface {
	// Create saves a new user to the store.
	// Uniqueness of the email is enforced by the store itself; the
	// service-level existence check is advisory only.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address (lowercased by
	// the caller). If multiple rows somehow match, the first by
	// (created_at, id) order wins; the tie-break is fixed so lookups are
	// reproducible. Returns ErrUserNotFound if no user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists changes to an existing user and refreshes its
	// update timestamp. Returns ErrUserNotFound if the user no longer
	// exists, ErrStorageConflict on a constraint race, and
	// ErrStorageUnavailable on transport failure.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns the users matching the filter. A nil filter matches
	// everything. Order is unspecified unless the implementation
	// documents one.
	List(ctx context.Context, filter *ListFilter) ([]*domain.User, error)

	// Count returns the number of users matching the filter. A nil
	// filter counts the whole store.
	Count(ctx context.Context, filter *ListFilter) (int64, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
