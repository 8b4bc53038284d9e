package services

import (
	"errors"
	"fmt"
)

// Domain rule violations. Every mutating operation either commits with all
// invariants intact or returns one of these without touching stored state.
var (
	// ErrNotFound is the generic form of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("not found")

	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrAssignmentNotFound = fmt.Errorf("assignment %w", ErrNotFound)
	ErrProgressNotFound   = fmt.Errorf("progress %w", ErrNotFound)

	// ErrDuplicateUsername is returned when registering a username that
	// already exists. Usernames are unique and case-sensitive.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is the unified authentication failure. Unknown
	// usernames and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInsufficientPrivilege is returned when a non-admin attempts an
	// admin-only operation.
	ErrInsufficientPrivilege = errors.New("insufficient privilege")

	// ErrProtectedAccount is returned on attempts to delete an admin account.
	ErrProtectedAccount = errors.New("administrator accounts cannot be deleted")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
