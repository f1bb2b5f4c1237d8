package service

import "errors"

var (
	// ErrInvalidInput marks a caller error: malformed or missing required
	// input, always detected before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotAuthorized marks a valid principal lacking the capability on an
	// existing resource.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrUsernameTaken is returned by SignUp when the username is already
	// registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned by LogIn on an unknown username or a
	// wrong password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
