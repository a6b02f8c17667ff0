package repositories

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a lookup by id or key matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateEmail is returned when an email is already taken by another user.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)
