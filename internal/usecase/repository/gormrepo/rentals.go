package gormrepo

import (
	"context"
	"errors"
	"time"

	"github.com/project/library/internal/entity"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var activeStatuses = lo.Map(entity.ActiveStatuses, func(s entity.RentalStatus, _ int) string { return string(s) })

func (s *Store) rentals(ctx context.Context) *gorm.DB {
	return s.conn(ctx).Table("rental AS r").
		Select("r.id, r.book_id, b.title AS book_title, r.due_date, r.returned_date, r.status, r.created_at, r.updated_at").
		Joins("JOIN book b ON b.id = r.book_id")
}

func (s *Store) CreateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error) {
	model := rentalModel{
		BookID:  rental.BookID,
		DueDate: entity.DateOf(rental.DueDate),
		Status:  string(rental.Status),
	}

	err := s.conn(ctx).Omit(clause.Associations).Create(&model).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.Rental{}, entity.BookAlreadyRented(rental.BookID, entity.RentalBorrowed)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return entity.Rental{}, entity.BookNotFound(rental.BookID)
	case err != nil:
		return entity.Rental{}, err
	}

	result := rental
	result.ID = model.ID
	result.DueDate = model.DueDate
	result.CreatedAt = model.CreatedAt
	result.UpdatedAt = model.UpdatedAt

	return result, nil
}

func (s *Store) GetRental(ctx context.Context, id int64) (entity.Rental, error) {
	var rows []rentalRow
	if err := s.rentals(ctx).Where("r.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return entity.Rental{}, err
	}
	if len(rows) == 0 {
		return entity.Rental{}, entity.RentalNotFound(id)
	}

	return rows[0].toEntity(), nil
}

func (s *Store) GetRentalForUpdate(ctx context.Context, id int64) (entity.Rental, error) {
	return s.GetRental(ctx, id)
}

func (s *Store) ListRentals(ctx context.Context) ([]entity.Rental, error) {
	return s.findRentals(s.rentals(ctx))
}

func (s *Store) ListActiveRentalsByBook(ctx context.Context, bookID int64) ([]entity.Rental, error) {
	return s.findRentals(s.rentals(ctx).Where("r.book_id = ? AND r.status IN ?", bookID, activeStatuses))
}

func (s *Store) ListActiveRentalsDueBefore(ctx context.Context, date time.Time) ([]entity.Rental, error) {
	return s.findRentals(s.rentals(ctx).
		Where("r.due_date < ? AND r.status IN ?", entity.DateOf(date), activeStatuses))
}

func (s *Store) findRentals(query *gorm.DB) ([]entity.Rental, error) {
	var rows []rentalRow
	if err := query.Order("r.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return lo.Map(rows, func(r rentalRow, _ int) entity.Rental { return r.toEntity() }), nil
}

func (s *Store) UpdateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error) {
	now := s.db.NowFunc()

	result := s.conn(ctx).Model(&rentalModel{}).
		Where("id = ?", rental.ID).
		Updates(map[string]any{
			"status":        string(rental.Status),
			"returned_date": rental.ReturnedDate,
			"updated_at":    now,
		})
	if result.Error != nil {
		return entity.Rental{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entity.Rental{}, entity.RentalNotFound(rental.ID)
	}

	updated := rental
	updated.UpdatedAt = now

	return updated, nil
}

// MarkOverdue moves the given BORROWED rentals to OVERDUE and returns the
// new updated_at of every row it changed.
func (s *Store) MarkOverdue(ctx context.Context, ids []int64) (map[int64]time.Time, error) {
	if len(ids) == 0 {
		return map[int64]time.Time{}, nil
	}

	var borrowed []int64
	err := s.conn(ctx).Model(&rentalModel{}).
		Where("id IN ? AND status = ?", ids, string(entity.RentalBorrowed)).
		Pluck("id", &borrowed).Error
	if err != nil {
		return nil, err
	}
	if len(borrowed) == 0 {
		return map[int64]time.Time{}, nil
	}

	now := s.db.NowFunc()
	err = s.conn(ctx).Model(&rentalModel{}).
		Where("id IN ? AND status = ?", borrowed, string(entity.RentalBorrowed)).
		Updates(map[string]any{
			"status":     string(entity.RentalOverdue),
			"updated_at": now,
		}).Error
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(borrowed, func(id int64) (int64, time.Time) { return id, now }), nil
}
