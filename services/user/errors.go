package user

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidCredentials is returned on a failed sign-in. It never
	// distinguishes a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole is returned when registration asks for a role that
	// cannot be self-assigned.
	ErrInvalidRole = errors.New("role must be player or owner")
)
