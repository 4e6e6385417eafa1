package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

const (
	listCategoriesQuery = `
SELECT id, category_name, user_id, created_at
FROM categories
WHERE user_id = ?
ORDER BY created_at DESC, id DESC;
`

	selectCategoryQuery = `
SELECT id, category_name, user_id, created_at
FROM categories
WHERE id = ? AND user_id = ?;
`

	insertCategoryQuery = `
INSERT INTO categories (category_name, user_id)
VALUES (?, ?);
`

	updateCategoryQuery = `
UPDATE categories
SET category_name = ?
WHERE id = ? AND user_id = ?;
`

	deleteCategoryQuery = `
DELETE FROM categories
WHERE id = ? AND user_id = ?;
`
)

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID           uint64    `db:"id"`
	CategoryName string    `db:"category_name"`
	UserID       uint64    `db:"user_id"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesQuery, userID); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}

	return categories, nil
}

func (r *CategoryRepository) FindByIDAndUser(ctx context.Context, id, userID uint64) (domain.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, selectCategoryQuery, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	return mapCategoryRowToDomainCategory(row), nil
}

// Create relies on the (user_id, category_name) unique key: the insert itself
// is the duplicate check, there is no race-prone pre-select.
func (r *CategoryRepository) Create(ctx context.Context, name string, userID uint64) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx, insertCategoryQuery, name, userID)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrCategoryExists
		}
		return domain.Category{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}

	return r.FindByIDAndUser(ctx, uint64(id), userID)
}

func (r *CategoryRepository) Update(ctx context.Context, id, userID uint64, name string) (domain.Category, error) {
	_, err := r.db.ExecContext(ctx, updateCategoryQuery, name, id, userID)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrCategoryExists
		}
		return domain.Category{}, err
	}

	return r.FindByIDAndUser(ctx, id, userID)
}

// Delete returns the deleted row. Tasks pointing at the category get their
// category_id cleared by the ON DELETE SET NULL foreign key, atomically with
// the delete.
func (r *CategoryRepository) Delete(ctx context.Context, id, userID uint64) (domain.Category, error) {
	category, err := r.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return domain.Category{}, err
	}

	result, err := r.db.ExecContext(ctx, deleteCategoryQuery, id, userID)
	if err != nil {
		return domain.Category{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Category{}, err
	}
	if affected == 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}

	return category, nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	return domain.Category{
		ID:        row.ID,
		Name:      row.CategoryName,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}
}
