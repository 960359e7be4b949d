package repository

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/book/model"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"
)

type postgresRepository struct {
	pool    *pgxpool.Pool
	builder goqu.DialectWrapper
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool:    pool,
		builder: goqu.Dialect(dialectPostgres),
	}
}

func (r *postgresRepository) byPublisherQuery(publisherID uuid.UUID) (string, []interface{}, error) {
	return r.builder.
		From(tableBooks).
		Prepared(true).
		Select("id", "title", goqu.COALESCE(goqu.C("summary"), "").As("summary"), "publisher_id").
		Where(goqu.C("publisher_id").Eq(publisherID.String())).
		Order(goqu.I("title").Asc()).
		ToSQL()
}

func (r *postgresRepository) FindByPublisher(ctx context.Context, publisherID uuid.UUID) ([]*model.Book, error) {
	query, args, err := r.byPublisherQuery(publisherID)
	if err != nil {
		return nil, fmt.Errorf("build books query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get books for publisher: %w", err)
	}
	defer rows.Close()

	books := make([]*model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.PublisherID); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}
