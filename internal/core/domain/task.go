package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Status      TaskStatus
	UserID      uint64
	CategoryID  *uint64
	// Filled by the left join against categories; nil when the task has no
	// category or its category was deleted.
	CategoryName *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	CategoryID  *uint64
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *TaskStatus
	CategoryID  *uint64
}
