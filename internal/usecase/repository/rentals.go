package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/project/library/internal/entity"
	"github.com/samber/lo"
)

const rentalSelect = `
SELECT r.id, r.book_id, b.title, r.due_date, r.returned_date, r.status, r.created_at, r.updated_at
FROM rental r
JOIN book b ON b.id = r.book_id
`

func scanRental(row pgx.Row) (entity.Rental, error) {
	var r entity.Rental
	err := row.Scan(&r.ID, &r.BookID, &r.BookTitle, &r.DueDate, &r.ReturnedDate, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (p *postgresRepository) CreateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error) {
	const query = `
INSERT INTO rental (book_id, due_date, status)
VALUES ($1, $2, $3::rental_status)
RETURNING id, created_at, updated_at
`
	result := rental

	err := p.conn(ctx).QueryRow(ctx, query, rental.BookID, rental.DueDate, string(rental.Status)).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	switch code, constraint := pgErrorCode(err); {
	case code == ErrUniqueViolation && constraint == constraintOneActiveRental:
		return entity.Rental{}, entity.BookAlreadyRented(rental.BookID, entity.RentalBorrowed)
	case code == ErrForeignKeyViolation:
		return entity.Rental{}, entity.BookNotFound(rental.BookID)
	}

	if err != nil {
		return entity.Rental{}, err
	}

	return result, nil
}

func (p *postgresRepository) GetRental(ctx context.Context, id int64) (entity.Rental, error) {
	return p.getRental(ctx, rentalSelect+`WHERE r.id = $1`, id)
}

func (p *postgresRepository) GetRentalForUpdate(ctx context.Context, id int64) (entity.Rental, error) {
	return p.getRental(ctx, rentalSelect+`WHERE r.id = $1 FOR UPDATE OF r`, id)
}

func (p *postgresRepository) getRental(ctx context.Context, query string, id int64) (entity.Rental, error) {
	rental, err := scanRental(p.conn(ctx).QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Rental{}, entity.RentalNotFound(id)
	}

	if err != nil {
		return entity.Rental{}, err
	}

	return rental, nil
}

func (p *postgresRepository) ListRentals(ctx context.Context) ([]entity.Rental, error) {
	return p.listRentals(ctx, rentalSelect+`ORDER BY r.id`)
}

func (p *postgresRepository) ListActiveRentalsByBook(ctx context.Context, bookID int64) ([]entity.Rental, error) {
	const where = `WHERE r.book_id = $1 AND r.status IN ('BORROWED', 'OVERDUE')
ORDER BY r.id`
	return p.listRentals(ctx, rentalSelect+where, bookID)
}

// ListActiveRentalsDueBefore locks the returned rows so the overdue write-back
// runs against what was read.
func (p *postgresRepository) ListActiveRentalsDueBefore(ctx context.Context, date time.Time) ([]entity.Rental, error) {
	const where = `WHERE r.due_date < $1 AND r.status IN ('BORROWED', 'OVERDUE')
ORDER BY r.id
FOR UPDATE OF r`
	return p.listRentals(ctx, rentalSelect+where, entity.DateOf(date))
}

func (p *postgresRepository) listRentals(ctx context.Context, query string, args ...any) ([]entity.Rental, error) {
	rows, err := p.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collect(rows, scanRental)
}

func (p *postgresRepository) UpdateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error) {
	const query = `
UPDATE rental
SET status = $1::rental_status, returned_date = $2
WHERE id = $3
RETURNING updated_at
`
	result := rental

	err := p.conn(ctx).QueryRow(ctx, query, string(rental.Status), rental.ReturnedDate, rental.ID).
		Scan(&result.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Rental{}, entity.RentalNotFound(rental.ID)
	}

	if err != nil {
		return entity.Rental{}, err
	}

	return result, nil
}

// MarkOverdue moves the given rentals from BORROWED to OVERDUE and returns
// the new updated_at of every row it changed. Rows in any other status are
// left alone and missing from the result.
func (p *postgresRepository) MarkOverdue(ctx context.Context, ids []int64) (map[int64]time.Time, error) {
	if len(ids) == 0 {
		return map[int64]time.Time{}, nil
	}

	const query = `
UPDATE rental
SET status = 'OVERDUE'
WHERE id = ANY($1) AND status = 'BORROWED'
RETURNING id, updated_at
`
	rows, err := p.conn(ctx).Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	type marked struct {
		id        int64
		updatedAt time.Time
	}

	changed, err := collect(rows, func(row pgx.Row) (marked, error) {
		var m marked
		err := row.Scan(&m.id, &m.updatedAt)
		return m, err
	})
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(changed, func(m marked) (int64, time.Time) { return m.id, m.updatedAt }), nil
}
