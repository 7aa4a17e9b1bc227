package library

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/project/library/internal/entity"
	"github.com/project/library/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (l *libraryImpl) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	name = strings.TrimSpace(name)
	log.InfoCreateCategory(l.logger, "Start of create category", traceID, name)

	category := entity.Category{Name: name}
	err := category.Validate()

	if err == nil {
		err = l.transactor.WithTx(ctx, func(ctx context.Context) error {
			_, txErr := l.categoriesRepository.GetCategoryByName(ctx, name)

			switch {
			case txErr == nil:
				return entity.DuplicateCategory(name)
			case !errors.Is(txErr, entity.ErrNotFound):
				return txErr
			}

			category, txErr = l.categoriesRepository.CreateCategory(ctx, category)
			return txErr
		})
	}

	if log.ErrorCreateCategory(l.logger, err, "Failed create category", traceID, name) {
		span.SetAttributes(attribute.String("category_name", name))
		span.RecordError(err)
		return entity.Category{}, err
	}

	span.SetAttributes(attribute.Int64("category_id", category.ID))
	log.InfoCreateCategory(l.logger, "Created the category", traceID, name, category.ID)
	return category, nil
}

func (l *libraryImpl) GetCategory(ctx context.Context, id int64) (entity.Category, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("category_id", id))

	category, err := l.categoriesRepository.GetCategory(ctx, id)
	if log.ErrorCategory(l.logger, log.GetCategory, err, "Failed get category", traceID, id) {
		span.RecordError(err)
		return entity.Category{}, err
	}

	log.InfoCategory(l.logger, log.GetCategory, "Got the category", traceID, id)
	return category, nil
}

func (l *libraryImpl) ListCategories(ctx context.Context) ([]entity.Category, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	categories, err := l.categoriesRepository.ListCategories(ctx)
	if log.ErrorList(l.logger, log.ListCategories, err, "Failed list categories", traceID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoList(l.logger, log.ListCategories, "Listed categories", traceID, len(categories))
	return categories, nil
}

func (l *libraryImpl) GetCategoryBooks(ctx context.Context, categoryID int64) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("category_id", categoryID))

	var books []entity.Book
	_, err := l.categoriesRepository.GetCategory(ctx, categoryID)
	if err == nil {
		books, err = l.booksRepository.ListBooksByCategory(ctx, categoryID)
	}

	if log.ErrorCategory(l.logger, log.GetCategoryBooks, err, "Failed get category books", traceID, categoryID) {
		span.RecordError(err)
		return nil, err
	}

	log.InfoCategory(l.logger, log.GetCategoryBooks, "Got the category books", traceID, categoryID)
	return books, nil
}

// resolveCategories turns ids into categories ordered by id. Duplicates
// collapse and the first unknown id fails the whole call.
func (l *libraryImpl) resolveCategories(ctx context.Context, ids []int64) ([]entity.Category, error) {
	unique := lo.Uniq(ids)

	found, err := l.categoriesRepository.GetCategories(ctx, unique)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(found, func(c entity.Category) int64 { return c.ID })

	resolved := make([]entity.Category, 0, len(unique))
	for _, id := range unique {
		category, ok := byID[id]
		if !ok {
			return nil, entity.CategoryNotFound(id)
		}
		resolved = append(resolved, category)
	}

	slices.SortFunc(resolved, func(a, b entity.Category) int { return cmp.Compare(a.ID, b.ID) })
	return resolved, nil
}
