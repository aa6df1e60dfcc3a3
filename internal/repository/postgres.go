package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"propertychat/internal/model"
)

const propertyColumns = `id, title, location, price, type, bedrooms, bathrooms, amenities, status, created_at, updated_at`

// PostgresRepository is the catalog query gateway: exact-id lookup and
// substring/range filtering over the property catalog.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection, used by tests
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// GetByID retrieves a single property by its id. Returns (nil, nil) when
// the property does not exist.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	var property model.Property
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	err := r.db.GetContext(ctx, &property, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// Filter returns properties matching the filter: case-insensitive
// substring matches on location and type, price bounded by MaxPrice.
// No matches yields an empty slice, not an error.
func (r *PostgresRepository) Filter(ctx context.Context, filter *model.PropertyFilter, limit int) ([]model.Property, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filter != nil {
		if filter.Location != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("location ILIKE $%d", argIndex))
			args = append(args, "%"+*filter.Location+"%")
			argIndex++
		}
		if filter.Type != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("type ILIKE $%d", argIndex))
			args = append(args, "%"+*filter.Type+"%")
			argIndex++
		}
		if filter.MaxPrice != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argIndex))
			args = append(args, *filter.MaxPrice)
			argIndex++
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM properties WHERE %s ORDER BY price ASC LIMIT $%d`,
		propertyColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	properties := []model.Property{}
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}
