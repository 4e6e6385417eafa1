package ports

import (
	"context"

	"tasktrack/internal/core/domain"
)

type CategoryRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]domain.Category, error)
	FindByIDAndUser(ctx context.Context, id, userID uint64) (domain.Category, error)
	Create(ctx context.Context, name string, userID uint64) (domain.Category, error)
	Update(ctx context.Context, id, userID uint64, name string) (domain.Category, error)
	Delete(ctx context.Context, id, userID uint64) (domain.Category, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context, userID uint64) ([]domain.Category, error)
	GetCategory(ctx context.Context, id, userID uint64) (domain.Category, error)
	CreateCategory(ctx context.Context, name string, userID uint64) (domain.Category, error)
	UpdateCategory(ctx context.Context, id, userID uint64, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id, userID uint64) (domain.Category, error)
}
