package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tasktrack/internal/core/domain"
)

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *userServiceMock) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, id, userID uint64) (domain.Category, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, name string, userID uint64) (domain.Category, error) {
	args := m.Called(ctx, name, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, id, userID uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, id, userID, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, id, userID uint64) (domain.Category, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id, userID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}
