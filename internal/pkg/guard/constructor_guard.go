// Package guard provides ConstructorGuard, a marker embedded in domain values
// and commands so that zero values built with struct literals can be told
// apart from values built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created by a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type SeedDemoDataCommand struct {
//	    today kernel.Date
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SeedDemoDataCommand) Validate() error {
//	    return c.guard.Validate(ErrSeedDemoDataCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
