package identity

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Role is the staff function of a user.
type Role int

const (
	// UnknownRole catches uninitialised values.
	UnknownRole Role = iota
	Baker
	Barista
	Admin
)

var roleNames = map[Role]string{
	Baker:   "baker",
	Barista: "barista",
	Admin:   "admin",
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}
