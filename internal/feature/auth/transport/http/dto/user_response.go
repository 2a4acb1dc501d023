package dto

import "time"

// UserRes represents the response of the /api/auth/me endpoint.
// The password hash is never part of any response.
type UserRes struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
