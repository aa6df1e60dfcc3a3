package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertychat/internal/model"
)

func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresRepositoryFromDB(sqlx.NewDb(db, "postgres")), mock
}

func propertyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "location", "price", "type", "bedrooms", "bathrooms",
		"amenities", "status", "created_at", "updated_at",
	})
}

func TestGetByID_Found(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM properties WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(propertyRows().AddRow(
			int64(42), "2 Bedroom Apartment", "Lekki Phase 1", 4500000.0, "apartment",
			2, 2, []byte(`["parking","security"]`), "Available", now, now,
		))

	property, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, property)
	assert.Equal(t, "2 Bedroom Apartment", property.Title)
	assert.Equal(t, model.JSONArray{"parking", "security"}, property.Amenities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM properties WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(propertyRows())

	property, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, property)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilter_AllClauses(t *testing.T) {
	repo, mock := newMockRepository(t)

	location := "lekki"
	propertyType := "apartment"
	maxPrice := 5000000.0

	mock.ExpectQuery(`SELECT .+ FROM properties WHERE 1=1 AND location ILIKE \$1 AND type ILIKE \$2 AND price <= \$3 ORDER BY price ASC LIMIT \$4`).
		WithArgs("%lekki%", "%apartment%", maxPrice, 20).
		WillReturnRows(propertyRows().AddRow(
			int64(1), "Lekki Flat", "Lekki", 4000000.0, "apartment",
			nil, nil, nil, nil, time.Now(), time.Now(),
		))

	properties, err := repo.Filter(context.Background(), &model.PropertyFilter{
		Location: &location,
		Type:     &propertyType,
		MaxPrice: &maxPrice,
	}, 20)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Lekki Flat", properties[0].Title)
	assert.Nil(t, properties[0].Bedrooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilter_NoFilterReturnsAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM properties WHERE 1=1 ORDER BY price ASC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(propertyRows())

	properties, err := repo.Filter(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.Empty(t, properties)
	assert.NotNil(t, properties)
	assert.NoError(t, mock.ExpectationsWereMet())
}
