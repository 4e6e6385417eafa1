package ports

import (
	"context"

	"tasktrack/internal/core/domain"
)

type TaskRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]domain.Task, error)
	FindByIDAndUser(ctx context.Context, id, userID uint64) (domain.Task, error)
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id, userID uint64) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, id, userID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id, userID uint64) (domain.Task, error)
}
