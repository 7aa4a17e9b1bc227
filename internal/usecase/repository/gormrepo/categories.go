package gormrepo

import (
	"context"
	"errors"

	"github.com/project/library/internal/entity"
	"gorm.io/gorm"
)

func (s *Store) CreateCategory(ctx context.Context, category entity.Category) (entity.Category, error) {
	model := categoryModel{Name: category.Name}

	err := s.conn(ctx).Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.Category{}, entity.DuplicateCategory(category.Name)
	}
	if err != nil {
		return entity.Category{}, err
	}

	return model.toEntity(), nil
}

func (s *Store) GetCategory(ctx context.Context, id int64) (entity.Category, error) {
	var model categoryModel

	err := s.conn(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Category{}, entity.CategoryNotFound(id)
	}
	if err != nil {
		return entity.Category{}, err
	}

	return model.toEntity(), nil
}

func (s *Store) GetCategoryByName(ctx context.Context, name string) (entity.Category, error) {
	var model categoryModel

	err := s.conn(ctx).Where("name = ?", name).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Category{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.Category{}, err
	}

	return model.toEntity(), nil
}

func (s *Store) GetCategories(ctx context.Context, ids []int64) ([]entity.Category, error) {
	if len(ids) == 0 {
		return []entity.Category{}, nil
	}

	var models []categoryModel
	if err := s.conn(ctx).Where("id IN ?", ids).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	return toCategories(models), nil
}

func (s *Store) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var models []categoryModel
	if err := s.conn(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	return toCategories(models), nil
}

func toCategories(models []categoryModel) []entity.Category {
	result := make([]entity.Category, 0, len(models))
	for _, m := range models {
		result = append(result, m.toEntity())
	}
	return result
}
