// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Task represents a single unit of work owned by exactly one user.
// A task is only ever visible or mutable through queries scoped to its owner.
type Task struct {
	// ID is the numeric identifier assigned by the store.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. Every task has exactly one owner.
	UserID string `gorm:"index;size:36;not null"`

	// Title is the task title, 1-200 characters after trimming.
	Title string `gorm:"size:200;not null"`

	// Description is an optional free-form note, at most 1000 characters.
	Description string `gorm:"size:1000"`

	// Completed marks the task as done. New tasks start pending.
	Completed bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every successful mutation of the row.
	UpdatedAt time.Time
}
