package ports

import (
	"context"

	"tasktrack/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (domain.User, error)
	// FindByEmail also returns the stored password hash; the hash never
	// leaves the service layer.
	FindByEmail(ctx context.Context, email string) (domain.User, string, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uint64, name, email, passwordHash *string) (domain.User, error)
	Delete(ctx context.Context, id uint64) (domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) (domain.User, error)
}
