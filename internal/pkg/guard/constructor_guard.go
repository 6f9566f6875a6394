// Package guard provides a defensive construction marker for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only objects built through their designated constructor carry
// a constructed guard, so Validate can reject anything created by direct
// struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so validation always fails with a meaningful
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor. The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it
// inside every constructor whose objects embed a ConstructorGuard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// otherwise the supplied validationError (or ErrDefaultConstructorGuard if
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
