package service

import (
	"context"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uint64) ([]domain.Category, error) {
	return s.categoryRepository.ListByUser(ctx, userID)
}

func (s *CategoryService) GetCategory(ctx context.Context, id, userID uint64) (domain.Category, error) {
	return s.categoryRepository.FindByIDAndUser(ctx, id, userID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string, userID uint64) (domain.Category, error) {
	return s.categoryRepository.Create(ctx, name, userID)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, userID uint64, name string) (domain.Category, error) {
	return s.categoryRepository.Update(ctx, id, userID, name)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID uint64) (domain.Category, error) {
	return s.categoryRepository.Delete(ctx, id, userID)
}
