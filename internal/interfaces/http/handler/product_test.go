package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/awerp/backend/internal/application/catalog"
	"github.com/awerp/backend/internal/domain/catalog"
	"github.com/awerp/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context, q shared.ListQuery) ([]catalog.Product, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int, includes ...string) (*catalog.Product, error) {
	args := m.Called(ctx, id, includes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockStagingRepository is a mock implementation of catalog.StagingRepository
type MockStagingRepository struct {
	mock.Mock
}

func (m *MockStagingRepository) Insert(ctx context.Context, row *catalog.NewProductStaging) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

type refRepoStub struct {
	mock.Mock
}

func (m *refRepoStub) Employees(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) Locations(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) Products(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) ProductModels(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) ProductSubcategories(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) UnitMeasures(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) Addresses(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) Customers(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) SalesPeople(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) ShipMethods(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) Territories(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) CreditCards(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}
func (m *refRepoStub) CurrencyRates(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *refRepoStub) expectProductOptions() {
	m.On("ProductModels", mock.Anything).Return([]shared.SelectOption{{Value: "1", Text: "Classic"}}, nil)
	m.On("ProductSubcategories", mock.Anything).Return([]shared.SelectOption{{Value: "2", Text: "Road Bikes"}}, nil)
	m.On("UnitMeasures", mock.Anything).Return([]shared.SelectOption{{Value: "CM", Text: "Centimeter"}}, nil)
}

func newProductRouter() (*gin.Engine, *MockProductRepository, *MockStagingRepository, *refRepoStub) {
	gin.SetMode(gin.TestMode)

	productRepo := new(MockProductRepository)
	stagingRepo := new(MockStagingRepository)
	refRepo := new(refRepoStub)
	service := catalogapp.NewProductService(productRepo, stagingRepo, refRepo)
	h := NewProductHandler(service)

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine, productRepo, stagingRepo, refRepo
}

func TestProductHandler_List(t *testing.T) {
	engine, productRepo, _, _ := newProductRouter()

	productRepo.On("Count", mock.Anything).Return(int64(100), nil)
	productRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(q shared.ListQuery) bool {
		return q.Offset == 0 && q.Limit == 50 && q.OrderBy == "product_id"
	})).Return([]catalog.Product{{ProductID: 1, Name: "Adjustable Race"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=1", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Meta    struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(100), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestProductHandler_GetByID(t *testing.T) {
	t.Run("missing product maps to 404", func(t *testing.T) {
		engine, productRepo, _, _ := newProductRouter()

		productRepo.On("FindByID", mock.Anything, 999, catalog.DefaultIncludes()).
			Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		engine, _, _, _ := newProductRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	payload := fmt.Sprintf(`{
		"name": "Adjustable Race",
		"product_number": "AR-5381",
		"safety_stock_level": 1000,
		"reorder_point": 750,
		"standard_cost": "0",
		"list_price": "0",
		"days_to_manufacture": 0,
		"sell_start_date": "2024-01-01T00:00:00Z",
		"modified_date": %q
	}`, stamp.Format(time.RFC3339))

	t.Run("stale stamp yields 409 with fresh form options", func(t *testing.T) {
		engine, productRepo, _, refRepo := newProductRouter()

		productRepo.On("FindByID", mock.Anything, 1, []string(nil)).
			Return(&catalog.Product{ProductID: 1}, nil)
		productRepo.On("Update", mock.Anything, mock.Anything).
			Return(error(shared.ErrConcurrencyConflict))
		refRepo.expectProductOptions()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/1", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_CONCURRENCY_CONFLICT")
		assert.Contains(t, w.Body.String(), "product_models")
	})

	t.Run("missing required fields yield 400 with fresh form options", func(t *testing.T) {
		engine, _, _, refRepo := newProductRouter()

		refRepo.expectProductOptions()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/1", strings.NewReader(`{"name": "x"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
		assert.Contains(t, w.Body.String(), "unit_measures")
	})
}

func TestProductHandler_Create(t *testing.T) {
	engine, _, stagingRepo, _ := newProductRouter()

	stagingRepo.On("Insert", mock.Anything, mock.MatchedBy(func(row *catalog.NewProductStaging) bool {
		return row.Name == "New Fork" && row.ProductNumber == "NF-1000"
	})).Return(nil)

	payload := `{
		"name": "New Fork",
		"product_number": "NF-1000",
		"safety_stock_level": 500,
		"reorder_point": 375,
		"standard_cost": "10.50",
		"list_price": "25.00",
		"days_to_manufacture": 1,
		"sell_start_date": "2024-06-01T00:00:00Z"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "staged")
	stagingRepo.AssertExpectations(t)
}

func TestProductHandler_Delete(t *testing.T) {
	engine, productRepo, _, _ := newProductRouter()

	productRepo.On("Delete", mock.Anything, 1).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
