package service

import (
	"context"
	"errors"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	categoryRepository ports.CategoryRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, categoryRepository ports.CategoryRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, categoryRepository: categoryRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByUser(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, id, userID uint64) (domain.Task, error) {
	return s.taskRepository.FindByIDAndUser(ctx, id, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.checkCategory(ctx, input.CategoryID, userID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Create(ctx, userID, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	// Ownership is decided before the payload is judged: a foreign task reads
	// as absent no matter what else the request carries.
	if _, err := s.taskRepository.FindByIDAndUser(ctx, id, userID); err != nil {
		return domain.Task{}, err
	}

	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	if err := s.checkCategory(ctx, input.CategoryID, userID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Update(ctx, id, userID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id, userID uint64) (domain.Task, error) {
	return s.taskRepository.Delete(ctx, id, userID)
}

// checkCategory verifies a supplied category exists and is owned by the
// caller. A foreign user's category is reported exactly like a missing one.
func (s *TaskService) checkCategory(ctx context.Context, categoryID *uint64, userID uint64) error {
	if categoryID == nil {
		return nil
	}

	_, err := s.categoryRepository.FindByIDAndUser(ctx, *categoryID, userID)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.ErrInvalidCategory
	}
	return err
}
