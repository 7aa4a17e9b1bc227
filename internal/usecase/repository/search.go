package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/project/library/internal/entity"
)

const dialectPostgres = "postgres"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildSearchQuery renders the book search as a prepared statement. Blank
// filter fields add no condition.
func buildSearchQuery(filter entity.BookFilter) (string, []any, error) {
	filter = filter.Normalize()

	dialect := goqu.Dialect(dialectPostgres)

	stmt := dialect.
		From(goqu.T("book").As("b")).
		Select("b.id", "b.title", "b.author", "b.status", "b.created_at", "b.updated_at").
		Order(goqu.I("b.id").Asc()).
		Prepared(true)

	if filter.Title != "" {
		stmt = stmt.Where(goqu.I("b.title").ILike(containsPattern(filter.Title)))
	}

	if filter.Author != "" {
		stmt = stmt.Where(goqu.I("b.author").ILike(containsPattern(filter.Author)))
	}

	if filter.Category != "" {
		inCategory := dialect.From(goqu.T("book_category").As("bc")).
			Join(goqu.T("category").As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("bc.category_id")))).
			Select("bc.book_id").
			Where(goqu.I("c.name").Eq(filter.Category))

		stmt = stmt.Where(goqu.I("b.id").In(inCategory))
	}

	query, args, err := stmt.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("can not build search query: %w", err)
	}

	return query, args, nil
}

func (p *postgresRepository) SearchBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error) {
	query, args, err := buildSearchQuery(filter)
	if err != nil {
		return nil, err
	}

	return p.listBooks(ctx, query, args...)
}
