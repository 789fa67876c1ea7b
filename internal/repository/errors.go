package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")

	// ErrCodeTaken is returned when an insert hits the unique constraint
	// on urls.short_code.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrEmailTaken is returned when an insert hits the unique constraint
	// on users.email.
	ErrEmailTaken = errors.New("email already taken")
)

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
