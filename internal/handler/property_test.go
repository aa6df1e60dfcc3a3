package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertychat/internal/model"
	"propertychat/internal/service"
)

type recordingCatalog struct {
	fakeCatalog
	lastFilter *model.PropertyFilter
	lastLimit  int
}

func (r *recordingCatalog) Filter(ctx context.Context, filter *model.PropertyFilter, limit int) ([]model.Property, error) {
	r.lastFilter = filter
	r.lastLimit = limit
	return r.fakeCatalog.Filter(ctx, filter, limit)
}

func newPropertyRouter(catalog service.CatalogGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)

	propertyService := service.NewPropertyService(catalog, 20, 100)
	propertyHandler := NewPropertyHandler(propertyService)

	router := gin.New()
	router.GET("/api/v1/properties", propertyHandler.List)
	router.GET("/api/v1/properties/:id", propertyHandler.Get)
	return router
}

func TestGetProperty_Found(t *testing.T) {
	wanted := model.Property{ID: 5, Title: "Yaba Flat", Location: "Yaba", Price: 2000000, Type: "flat"}
	router := newPropertyRouter(&fakeCatalog{byID: map[int64]*model.Property{5: &wanted}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/5", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var property model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &property))
	assert.Equal(t, "Yaba Flat", property.Title)
}

func TestGetProperty_NotFound(t *testing.T) {
	router := newPropertyRouter(&fakeCatalog{byID: map[int64]*model.Property{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/123", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProperty_InvalidID(t *testing.T) {
	router := newPropertyRouter(&fakeCatalog{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProperties_QueryParams(t *testing.T) {
	catalog := &recordingCatalog{fakeCatalog: fakeCatalog{properties: []model.Property{
		{ID: 1, Title: "Lekki Flat", Location: "Lekki", Price: 4000000, Type: "apartment"},
	}}}
	router := newPropertyRouter(catalog)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/v1/properties?location=lekki&type=apartment&max_price=5000000&limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, catalog.lastFilter)
	require.NotNil(t, catalog.lastFilter.Location)
	assert.Equal(t, "lekki", *catalog.lastFilter.Location)
	require.NotNil(t, catalog.lastFilter.MaxPrice)
	assert.InDelta(t, 5000000, *catalog.lastFilter.MaxPrice, 1e-6)
	assert.Equal(t, 10, catalog.lastLimit)

	var resp struct {
		Properties []model.Property `json:"properties"`
		Count      int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestListProperties_LimitClamped(t *testing.T) {
	catalog := &recordingCatalog{}
	router := newPropertyRouter(catalog)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties?limit=5000", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, catalog.lastLimit)
}

func TestListProperties_InvalidMaxPrice(t *testing.T) {
	router := newPropertyRouter(&fakeCatalog{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties?max_price=cheap", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
