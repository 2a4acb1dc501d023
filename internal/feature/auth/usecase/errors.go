// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email or password does not match.
	// The same error covers both an unknown email and a wrong password so the
	// response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNameRequired is returned when the display name is empty after trimming.
	ErrNameRequired = errors.New("name cannot be empty")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password must be at least 8 characters long")
)
