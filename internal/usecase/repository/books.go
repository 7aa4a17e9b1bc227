package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/library/internal/entity"
	"github.com/samber/lo"
)

const bookColumns = `b.id, b.title, b.author, b.status, b.created_at, b.updated_at`

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (p *postgresRepository) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const queryBook = `
INSERT INTO book (title, author, status)
VALUES ($1, $2, $3::book_status)
RETURNING id, created_at, updated_at
`
	result := entity.Book{
		Title:      book.Title,
		Author:     book.Author,
		Status:     book.Status,
		Categories: book.Categories,
	}

	err := p.inTx(ctx, func(q DataBase) error {
		err := q.QueryRow(ctx, queryBook, book.Title, book.Author, string(book.Status)).
			Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
		if err != nil {
			return err
		}

		return insertBookCategories(ctx, q, result.ID, book.CategoryIDs())
	})

	if err != nil {
		return entity.Book{}, err
	}

	return result, nil
}

func insertBookCategories(ctx context.Context, q DataBase, bookID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	const query = `
INSERT INTO book_category (book_id, category_id)
SELECT $1, unnest($2::bigint[])
`
	_, err := q.Exec(ctx, query, bookID, categoryIDs)

	if code, _ := pgErrorCode(err); code == ErrForeignKeyViolation {
		return fmt.Errorf("can not link book %d: %w", bookID, entity.CategoryNotFound(0))
	}

	return err
}

func (p *postgresRepository) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book b
WHERE b.id = $1
`
	return p.getBook(ctx, query, id)
}

// GetBookForUpdate locks the book row until the surrounding transaction ends.
func (p *postgresRepository) GetBookForUpdate(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book b
WHERE b.id = $1
FOR UPDATE
`
	return p.getBook(ctx, query, id)
}

func (p *postgresRepository) getBook(ctx context.Context, query string, id int64) (entity.Book, error) {
	q := p.conn(ctx)

	book, err := scanBook(q.QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.BookNotFound(id)
	}

	if err != nil {
		return entity.Book{}, err
	}

	books := []entity.Book{book}
	if err = attachCategories(ctx, q, books); err != nil {
		return entity.Book{}, err
	}

	return books[0], nil
}

func (p *postgresRepository) ListBooks(ctx context.Context) ([]entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book b
ORDER BY b.id
`
	return p.listBooks(ctx, query)
}

func (p *postgresRepository) ListBooksByCategory(ctx context.Context, categoryID int64) ([]entity.Book, error) {
	const query = `
SELECT ` + bookColumns + `
FROM book b
JOIN book_category bc ON bc.book_id = b.id
WHERE bc.category_id = $1
ORDER BY b.id
`
	return p.listBooks(ctx, query, categoryID)
}

func (p *postgresRepository) listBooks(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	q := p.conn(ctx)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	books, err := collect(rows, scanBook)
	if err != nil {
		return nil, err
	}

	if err = attachCategories(ctx, q, books); err != nil {
		return nil, err
	}

	return books, nil
}

// attachCategories fills Categories of every book with one query over the
// association table.
func attachCategories(ctx context.Context, q DataBase, books []entity.Book) error {
	if len(books) == 0 {
		return nil
	}

	const query = `
SELECT bc.book_id, c.id, c.name, c.created_at, c.updated_at
FROM book_category bc
JOIN category c ON c.id = bc.category_id
WHERE bc.book_id = ANY($1)
ORDER BY c.id
`
	ids := lo.Map(books, func(b entity.Book, _ int) int64 { return b.ID })

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byBook := make(map[int64][]entity.Category, len(books))
	for rows.Next() {
		var (
			bookID int64
			c      entity.Category
		)
		if err = rows.Scan(&bookID, &c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		byBook[bookID] = append(byBook[bookID], c)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range books {
		books[i].Categories = byBook[books[i].ID]
		if books[i].Categories == nil {
			books[i].Categories = []entity.Category{}
		}
	}

	return nil
}

func (p *postgresRepository) UpdateBookStatus(ctx context.Context, id int64, status entity.BookStatus) (entity.Book, error) {
	const query = `
UPDATE book b
SET status = $1::book_status
WHERE b.id = $2
RETURNING ` + bookColumns

	q := p.conn(ctx)

	book, err := scanBook(q.QueryRow(ctx, query, string(status), id))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.BookNotFound(id)
	}

	if err != nil {
		return entity.Book{}, err
	}

	books := []entity.Book{book}
	if err = attachCategories(ctx, q, books); err != nil {
		return entity.Book{}, err
	}

	return books[0], nil
}

// ReplaceBookCategories drops every association of the book and links the
// given categories instead.
func (p *postgresRepository) ReplaceBookCategories(ctx context.Context, id int64, categoryIDs []int64) error {
	const query = `
DELETE FROM book_category
WHERE book_id = $1
`
	return p.inTx(ctx, func(q DataBase) error {
		if _, err := q.Exec(ctx, query, id); err != nil {
			return err
		}

		return insertBookCategories(ctx, q, id, categoryIDs)
	})
}
