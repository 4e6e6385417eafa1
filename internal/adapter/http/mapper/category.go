package mapper

import (
	"time"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:           category.ID,
		CategoryName: category.Name,
		UserID:       category.UserID,
		CreatedAt:    category.CreatedAt.Format(time.RFC3339),
	}
}
