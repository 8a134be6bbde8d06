// Package errs provides the typed errors shared by the bakery domain, the
// application use cases and the persistence adapters.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// Constructors in the domain join several of these with errors.Join so a
// caller sees every violated rule at once.
package errs
