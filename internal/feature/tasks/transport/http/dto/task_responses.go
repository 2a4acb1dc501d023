package dto

import "time"

// TaskRes represents a full task record in responses.
type TaskRes struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListRes represents the response of GET /api/tasks.
// The applied filter and sort order are echoed back to the caller.
type TaskListRes struct {
	Tasks        []TaskRes `json:"tasks"`
	Total        int       `json:"total"`
	StatusFilter string    `json:"status_filter,omitempty"`
	SortOrder    string    `json:"sort_order,omitempty"`
}

// TaskCreateRes represents the response of POST /api/tasks.
type TaskCreateRes struct {
	TaskID uint   `json:"task_id"`
	Status string `json:"status"`
	Title  string `json:"title"`
}

// TaskUpdateRes represents the response of PATCH /api/tasks/:id.
type TaskUpdateRes struct {
	TaskID    uint   `json:"task_id"`
	Status    string `json:"status"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskDeleteRes represents the response of DELETE /api/tasks/:id.
// Title echoes the title of the row that was deleted.
type TaskDeleteRes struct {
	TaskID uint   `json:"task_id"`
	Status string `json:"status"`
	Title  string `json:"title"`
}
