package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/publisher/model"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dialectPostgres = "postgres"
	tablePublishers = "publishers"

	colID        = "id"
	colName      = "name"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

var publisherColumns = []interface{}{colID, colName, colCreatedAt, colUpdatedAt}

// postgresRepository implements RepositoryInterface on pgxpool,
// queries are built with goqu
type postgresRepository struct {
	pool    *pgxpool.Pool
	builder goqu.DialectWrapper
}

// NewPostgresRepository creates a new publisher repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool:    pool,
		builder: goqu.Dialect(dialectPostgres),
	}
}

func scanPublisher(row pgx.Row) (*model.Publisher, error) {
	var pub model.Publisher
	if err := row.Scan(&pub.ID, &pub.Name, &pub.CreatedAt, &pub.UpdatedAt); err != nil {
		return nil, err
	}
	return &pub, nil
}

// queryOne runs a single-row query; pgx.ErrNoRows maps to (nil, nil)
func (r *postgresRepository) queryOne(ctx context.Context, query string, args []interface{}) (*model.Publisher, error) {
	pub, err := scanPublisher(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return pub, nil
}

// Query builders, kept apart from execution so the generated SQL is testable

func (r *postgresRepository) listQuery() (string, []interface{}, error) {
	return r.builder.
		From(tablePublishers).
		Prepared(true).
		Select(publisherColumns...).
		Order(goqu.I(colName).Asc()).
		ToSQL()
}

func (r *postgresRepository) byIDQuery(id uuid.UUID) (string, []interface{}, error) {
	return r.builder.
		From(tablePublishers).
		Prepared(true).
		Select(publisherColumns...).
		Where(goqu.C(colID).Eq(id.String())).
		ToSQL()
}

// byNameQuery khớp chính xác, bản ghi cũ nhất trước
func (r *postgresRepository) byNameQuery(name string) (string, []interface{}, error) {
	return r.builder.
		From(tablePublishers).
		Prepared(true).
		Select(publisherColumns...).
		Where(goqu.C(colName).Eq(name)).
		Order(goqu.I(colCreatedAt).Asc()).
		Limit(1).
		ToSQL()
}

func (r *postgresRepository) insertQuery(pub *model.Publisher) (string, []interface{}, error) {
	return r.builder.
		Insert(tablePublishers).
		Prepared(true).
		Rows(goqu.Record{colName: pub.Name}).
		Returning(publisherColumns...).
		ToSQL()
}

func (r *postgresRepository) updateQuery(id uuid.UUID, pub *model.Publisher) (string, []interface{}, error) {
	return r.builder.
		Update(tablePublishers).
		Prepared(true).
		Set(goqu.Record{
			colName:      pub.Name,
			colUpdatedAt: goqu.L("NOW()"),
		}).
		Where(goqu.C(colID).Eq(id.String())).
		Returning(publisherColumns...).
		ToSQL()
}

func (r *postgresRepository) deleteQuery(id uuid.UUID) (string, []interface{}, error) {
	return r.builder.
		Delete(tablePublishers).
		Prepared(true).
		Where(goqu.C(colID).Eq(id.String())).
		ToSQL()
}

// Find retrieves all publishers sorted by name
func (r *postgresRepository) Find(ctx context.Context) ([]*model.Publisher, error) {
	query, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}
	defer rows.Close()

	publishers := make([]*model.Publisher, 0)
	for rows.Next() {
		pub, err := scanPublisher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan publisher row: %w", err)
		}
		publishers = append(publishers, pub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publisher rows: %w", err)
	}

	return publishers, nil
}

// FindByID retrieves a publisher by ID
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Publisher, error) {
	query, args, err := r.byIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	pub, err := r.queryOne(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher by id: %w", err)
	}
	return pub, nil
}

// FindOneByName retrieves a publisher by exact name
func (r *postgresRepository) FindOneByName(ctx context.Context, name string) (*model.Publisher, error) {
	query, args, err := r.byNameQuery(name)
	if err != nil {
		return nil, fmt.Errorf("build name query: %w", err)
	}

	pub, err := r.queryOne(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher by name: %w", err)
	}
	return pub, nil
}

// Save inserts a new publisher record
func (r *postgresRepository) Save(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}

	query, args, err := r.insertQuery(pub)
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	created, err := scanPublisher(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert publisher: %w", err)
	}
	return created, nil
}

// FindByIDAndUpdate replaces name and bumps updated_at
func (r *postgresRepository) FindByIDAndUpdate(ctx context.Context, id uuid.UUID, pub *model.Publisher) (*model.Publisher, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}

	query, args, err := r.updateQuery(id, pub)
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	updated, err := r.queryOne(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}
	return updated, nil
}

// FindByIDAndRemove deletes a publisher record
func (r *postgresRepository) FindByIDAndRemove(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.deleteQuery(id)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}
	return nil
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
