package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Property represents a property listing in the catalog
type Property struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Location  string    `json:"location" db:"location"`
	Price     float64   `json:"price" db:"price"`
	Type      string    `json:"type" db:"type"`
	Bedrooms  *int      `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms *int      `json:"bathrooms,omitempty" db:"bathrooms"`
	Amenities JSONArray `json:"amenities,omitempty" db:"amenities"`
	Status    *string   `json:"status,omitempty" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PropertyFilter represents a catalog query built from extracted entities.
// Location and Type are substring matches; MaxPrice is an upper bound.
// Nil fields are not applied.
type PropertyFilter struct {
	Location *string  `json:"location,omitempty"`
	Type     *string  `json:"property_type,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
