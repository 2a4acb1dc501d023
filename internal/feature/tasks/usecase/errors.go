// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when no task matches both the requested ID
	// and the calling user. A task owned by somebody else is indistinguishable
	// from a task that does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTitleRequired is returned when the title is empty after trimming.
	ErrTitleRequired = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when the title exceeds 200 characters.
	ErrTitleTooLong = errors.New("title must be at most 200 characters")

	// ErrDescriptionTooLong is returned when the description exceeds 1000 characters.
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
)
