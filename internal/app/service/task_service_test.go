package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/app/service"
	"tasktrack/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByUser(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) FindByIDAndUser(ctx context.Context, id, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) ListByUser(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) FindByIDAndUser(ctx context.Context, id, userID uint64) (domain.Category, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Create(ctx context.Context, name string, userID uint64) (domain.Category, error) {
	args := m.Called(ctx, name, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Update(ctx context.Context, id, userID uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, id, userID, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Delete(ctx context.Context, id, userID uint64) (domain.Category, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func TestTaskService_CreateTask_RejectsForeignCategory(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	categoryRepo := new(categoryRepositoryMock)

	categoryID := uint64(9)
	// The scoped lookup reports a foreign category as missing.
	categoryRepo.On("FindByIDAndUser", mock.Anything, categoryID, uint64(1)).
		Return(domain.Category{}, domain.ErrCategoryNotFound).Once()

	svc := service.NewTaskService(taskRepo, categoryRepo)
	_, err := svc.CreateTask(context.Background(), 1, domain.CreateTaskInput{
		Title:      "Write spec",
		CategoryID: &categoryID,
	})
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	categoryRepo.AssertExpectations(t)
}

func TestTaskService_CreateTask_NoCategorySkipsCheck(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	categoryRepo := new(categoryRepositoryMock)

	input := domain.CreateTaskInput{Title: "Write spec"}
	taskRepo.On("Create", mock.Anything, uint64(1), input).
		Return(domain.Task{ID: 3, Title: "Write spec", Status: domain.TaskStatusPending}, nil).Once()

	svc := service.NewTaskService(taskRepo, categoryRepo)
	task, err := svc.CreateTask(context.Background(), 1, input)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusPending, task.Status)
	categoryRepo.AssertNotCalled(t, "FindByIDAndUser", mock.Anything, mock.Anything, mock.Anything)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_RejectsInvalidStatus(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	categoryRepo := new(categoryRepositoryMock)

	taskRepo.On("FindByIDAndUser", mock.Anything, uint64(3), uint64(1)).
		Return(domain.Task{ID: 3, UserID: 1}, nil).Once()

	status := domain.TaskStatus("archived")
	svc := service.NewTaskService(taskRepo, categoryRepo)
	_, err := svc.UpdateTask(context.Background(), 3, 1, domain.UpdateTaskInput{Status: &status})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_UpdateTask_AllowsBothStatusDirections(t *testing.T) {
	for _, status := range []domain.TaskStatus{domain.TaskStatusCompleted, domain.TaskStatusPending} {
		taskRepo := new(taskRepositoryMock)
		categoryRepo := new(categoryRepositoryMock)

		taskRepo.On("FindByIDAndUser", mock.Anything, uint64(3), uint64(1)).
			Return(domain.Task{ID: 3, UserID: 1}, nil).Once()

		input := domain.UpdateTaskInput{Status: &status}
		taskRepo.On("Update", mock.Anything, uint64(3), uint64(1), input).
			Return(domain.Task{ID: 3, Status: status}, nil).Once()

		svc := service.NewTaskService(taskRepo, categoryRepo)
		task, err := svc.UpdateTask(context.Background(), 3, 1, input)
		require.NoError(t, err)
		require.Equal(t, status, task.Status)
		taskRepo.AssertExpectations(t)
	}
}

func TestTaskService_UpdateTask_RejectsForeignCategory(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	categoryRepo := new(categoryRepositoryMock)

	taskRepo.On("FindByIDAndUser", mock.Anything, uint64(3), uint64(1)).
		Return(domain.Task{ID: 3, UserID: 1}, nil).Once()

	categoryID := uint64(9)
	categoryRepo.On("FindByIDAndUser", mock.Anything, categoryID, uint64(1)).
		Return(domain.Category{}, domain.ErrCategoryNotFound).Once()

	svc := service.NewTaskService(taskRepo, categoryRepo)
	_, err := svc.UpdateTask(context.Background(), 3, 1, domain.UpdateTaskInput{CategoryID: &categoryID})
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	categoryRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_ForeignTaskReadsAsAbsentBeforePayloadChecks(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	categoryRepo := new(categoryRepositoryMock)

	// The caller does not own task 3; the foreign category in the payload must
	// not surface, the task itself reads as absent.
	taskRepo.On("FindByIDAndUser", mock.Anything, uint64(3), uint64(2)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	categoryID := uint64(9)
	status := domain.TaskStatus("archived")
	svc := service.NewTaskService(taskRepo, categoryRepo)
	_, err := svc.UpdateTask(context.Background(), 3, 2, domain.UpdateTaskInput{
		Status:     &status,
		CategoryID: &categoryID,
	})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	categoryRepo.AssertNotCalled(t, "FindByIDAndUser", mock.Anything, mock.Anything, mock.Anything)
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	taskRepo.AssertExpectations(t)
}
