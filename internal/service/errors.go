package service

import "errors"

var (
	// ErrNotFound covers both an unknown short code and an owner-scoped
	// lookup miss. The two cases are deliberately indistinguishable so a
	// caller cannot learn that another user's link exists.
	ErrNotFound = errors.New("link not found")

	// ErrCodeAlreadyExists is returned when a custom short code collides
	// with an existing link.
	ErrCodeAlreadyExists = errors.New("short code already taken")

	// ErrGenerationExhausted is returned when generated codes kept
	// colliding until the retry budget ran out.
	ErrGenerationExhausted = errors.New("could not generate a unique short code")

	// ErrInvalidDestination is returned for a target that is not a
	// well-formed absolute http(s) URL.
	ErrInvalidDestination = errors.New("destination must be an absolute http or https URL")

	// ErrInvalidShortCode is returned for a custom code that fails the
	// length or charset rules, or names one of our own routes.
	ErrInvalidShortCode = errors.New("invalid short code")

	// ErrUnavailable is returned when the backing store cannot answer in
	// time. The redirect path fails closed rather than hanging.
	ErrUnavailable = errors.New("service unavailable")

	// ErrEmailExists is returned when registering with an email that is
	// already in use.
	ErrEmailExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned for a failed login. Unknown email
	// and wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
