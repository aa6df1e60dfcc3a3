package service

import (
	"context"

	"propertychat/internal/model"
)

// PropertyService exposes the catalog read surface outside the chat
// pipeline (direct lookups and parameterized listing).
type PropertyService struct {
	catalog      CatalogGateway
	defaultLimit int
	maxLimit     int
}

// NewPropertyService creates a new property service
func NewPropertyService(catalog CatalogGateway, defaultLimit, maxLimit int) *PropertyService {
	return &PropertyService{
		catalog:      catalog,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Get retrieves a single property; (nil, nil) when it does not exist
func (s *PropertyService) Get(ctx context.Context, id int64) (*model.Property, error) {
	return s.catalog.GetByID(ctx, id)
}

// List returns properties matching the filter, with the limit clamped to
// the configured bounds.
func (s *PropertyService) List(ctx context.Context, filter *model.PropertyFilter, limit int) ([]model.Property, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.catalog.Filter(ctx, filter, limit)
}
