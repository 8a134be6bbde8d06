package identity

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed   = errors.New("User must be created via NewUser or RestoreUser")
	ErrEmailIsRequired        = errs.NewValueIsRequiredError("email")
	ErrFirstNameIsRequired    = errs.NewValueIsRequiredError("first name")
	ErrLastNameIsRequired     = errs.NewValueIsRequiredError("last name")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	errEmailHasNoAt           = errors.New("missing @")
)

// User is a staff member who authors order history entries.
//
// Equality (IsEqual) is defined by email, first name, last name and role.
// The identifier and the password hash take no part in it.
type User struct {
	id           kernel.UUID
	email        string
	firstName    string
	lastName     string
	passwordHash string
	role         Role
	locked       bool

	guard guard.ConstructorGuard
}

// NewUser creates a user with a fresh identifier. The password must already be
// hashed; see ports.PasswordHasher.
func NewUser(email, firstName, lastName, passwordHash string, role Role, locked bool) (*User, error) {
	return RestoreUser(kernel.NewUUID(), email, firstName, lastName, passwordHash, role, locked)
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(
	id kernel.UUID,
	email, firstName, lastName, passwordHash string,
	role Role,
	locked bool,
) (*User, error) {
	u := &User{locked: locked, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual reports whether both users share email, names and role.
func (u *User) IsEqual(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.email == other.email &&
		u.firstName == other.firstName &&
		u.lastName == other.lastName &&
		u.role == other.role
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Locked() bool         { return u.locked }

// FullName is "First Last".
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", errEmailHasNoAt)
	}
	u.email = email
	return nil
}

func (u *User) setFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrFirstNameIsRequired
	}
	u.firstName = name
	return nil
}

func (u *User) setLastName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrLastNameIsRequired
	}
	u.lastName = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
