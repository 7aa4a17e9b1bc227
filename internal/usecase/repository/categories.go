package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/project/library/internal/entity"
)

const categoryColumns = `id, name, created_at, updated_at`

func scanCategory(row pgx.Row) (entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (p *postgresRepository) CreateCategory(ctx context.Context, category entity.Category) (entity.Category, error) {
	const query = `
INSERT INTO category (name)
VALUES ($1)
RETURNING id, created_at, updated_at
`
	result := entity.Category{Name: category.Name}

	err := p.conn(ctx).QueryRow(ctx, query, category.Name).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if code, _ := pgErrorCode(err); code == ErrUniqueViolation {
		return entity.Category{}, entity.DuplicateCategory(category.Name)
	}

	if err != nil {
		return entity.Category{}, err
	}

	return result, nil
}

func (p *postgresRepository) GetCategory(ctx context.Context, id int64) (entity.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM category
WHERE id = $1
`
	category, err := scanCategory(p.conn(ctx).QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Category{}, entity.CategoryNotFound(id)
	}

	if err != nil {
		return entity.Category{}, err
	}

	return category, nil
}

func (p *postgresRepository) GetCategoryByName(ctx context.Context, name string) (entity.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM category
WHERE name = $1
`
	category, err := scanCategory(p.conn(ctx).QueryRow(ctx, query, name))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Category{}, entity.ErrNotFound
	}

	if err != nil {
		return entity.Category{}, err
	}

	return category, nil
}

// GetCategories returns the existing categories among ids, ordered by id.
// Missing ids are simply absent from the result.
func (p *postgresRepository) GetCategories(ctx context.Context, ids []int64) ([]entity.Category, error) {
	if len(ids) == 0 {
		return []entity.Category{}, nil
	}

	const query = `
SELECT ` + categoryColumns + `
FROM category
WHERE id = ANY($1)
ORDER BY id
`
	rows, err := p.conn(ctx).Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	return collect(rows, scanCategory)
}

func (p *postgresRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM category
ORDER BY id
`
	rows, err := p.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collect(rows, scanCategory)
}
