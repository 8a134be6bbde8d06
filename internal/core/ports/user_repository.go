// Package ports defines the contracts between the bakery core and its
// infrastructure: repositories, the transaction boundary, password hashing
// and the clock.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for staff accounts.
type UserRepository interface {
	// Add persists a new user. E-mail addresses are unique.
	Add(ctx context.Context, user *identity.User) error

	// Get retrieves a user by identifier.
	// Returns errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// Count returns the number of stored users. Demo seeding treats a
	// non-zero count as an already populated store.
	Count(ctx context.Context) (int64, error)
}
