package models

import "errors"

// Failure taxonomy shared by every service. Services wrap these with
// context via fmt.Errorf("...: %w", ...); handlers translate them into
// transport status codes with errors.Is.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInternal        = errors.New("internal error")
)
