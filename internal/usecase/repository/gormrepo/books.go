package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/project/library/internal/entity"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	model := bookModel{
		Title:  book.Title,
		Author: book.Author,
		Status: string(book.Status),
	}

	err := s.WithTx(ctx, func(ctx context.Context) error {
		if err := s.conn(ctx).Create(&model).Error; err != nil {
			return err
		}
		return s.linkCategories(ctx, model.ID, book.CategoryIDs())
	})
	if err != nil {
		return entity.Book{}, err
	}

	result := model.toEntity()
	result.Categories = book.Categories

	return result, nil
}

func (s *Store) linkCategories(ctx context.Context, bookID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := lo.Map(categoryIDs, func(id int64, _ int) bookCategoryModel {
		return bookCategoryModel{BookID: bookID, CategoryID: id}
	})

	err := s.conn(ctx).Omit(clause.Associations).Create(&links).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("can not link book %d: %w", bookID, entity.CategoryNotFound(0))
	}

	return err
}

func (s *Store) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	var model bookModel

	err := s.conn(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Book{}, entity.BookNotFound(id)
	}
	if err != nil {
		return entity.Book{}, err
	}

	books := []entity.Book{model.toEntity()}
	if err = s.attachCategories(ctx, books); err != nil {
		return entity.Book{}, err
	}

	return books[0], nil
}

// GetBookForUpdate is GetBook: SQLite has no row locks, the single
// connection already serializes writers.
func (s *Store) GetBookForUpdate(ctx context.Context, id int64) (entity.Book, error) {
	return s.GetBook(ctx, id)
}

func (s *Store) ListBooks(ctx context.Context) ([]entity.Book, error) {
	return s.findBooks(ctx, s.conn(ctx).Model(&bookModel{}))
}

func (s *Store) ListBooksByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error) {
	query := s.conn(ctx).Model(&bookModel{}).
		Joins("JOIN book_category bc ON bc.book_id = book.id").
		Where("bc.category_id = ?", categoryID)

	return s.findBooks(ctx, query)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func (s *Store) SearchBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error) {
	filter = filter.Normalize()
	query := s.conn(ctx).Model(&bookModel{})

	if filter.Title != "" {
		query = query.Where(`LOWER(book.title) LIKE ? ESCAPE '\'`, containsPattern(filter.Title))
	}

	if filter.Author != "" {
		query = query.Where(`LOWER(book.author) LIKE ? ESCAPE '\'`, containsPattern(filter.Author))
	}

	if filter.Category != "" {
		inCategory := s.conn(ctx).Table("book_category AS bc").
			Select("bc.book_id").
			Joins("JOIN category c ON c.id = bc.category_id").
			Where("c.name = ?", filter.Category)

		query = query.Where("book.id IN (?)", inCategory)
	}

	return s.findBooks(ctx, query)
}

func (s *Store) findBooks(ctx context.Context, query *gorm.DB) ([]entity.Book, error) {
	var models []bookModel
	if err := query.Select("book.*").Order("book.id").Find(&models).Error; err != nil {
		return nil, err
	}

	books := lo.Map(models, func(m bookModel, _ int) entity.Book { return m.toEntity() })
	if err := s.attachCategories(ctx, books); err != nil {
		return nil, err
	}

	return books, nil
}

type bookCategoryRow struct {
	BookID    int64
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) attachCategories(ctx context.Context, books []entity.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := lo.Map(books, func(b entity.Book, _ int) int64 { return b.ID })

	var rows []bookCategoryRow
	err := s.conn(ctx).Table("book_category AS bc").
		Select("bc.book_id, c.id, c.name, c.created_at, c.updated_at").
		Joins("JOIN category c ON c.id = bc.category_id").
		Where("bc.book_id IN ?", ids).
		Order("c.id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	byBook := lo.GroupBy(rows, func(r bookCategoryRow) int64 { return r.BookID })
	for i := range books {
		for _, r := range byBook[books[i].ID] {
			books[i].Categories = append(books[i].Categories, entity.Category{
				ID:        r.ID,
				Name:      r.Name,
				CreatedAt: r.CreatedAt,
				UpdatedAt: r.UpdatedAt,
			})
		}
	}

	return nil
}

func (s *Store) UpdateBookStatus(ctx context.Context, id int64, status entity.BookStatus) (entity.Book, error) {
	result := s.conn(ctx).Model(&bookModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": s.db.NowFunc()})
	if result.Error != nil {
		return entity.Book{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entity.Book{}, entity.BookNotFound(id)
	}

	return s.GetBook(ctx, id)
}

func (s *Store) ReplaceBookCategories(ctx context.Context, id int64, categoryIDs []int64) error {
	return s.WithTx(ctx, func(ctx context.Context) error {
		if err := s.conn(ctx).Where("book_id = ?", id).Delete(&bookCategoryModel{}).Error; err != nil {
			return err
		}
		return s.linkCategories(ctx, id, categoryIDs)
	})
}
