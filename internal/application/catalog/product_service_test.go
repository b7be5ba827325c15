package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/awerp/backend/internal/domain/catalog"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

// MockReferenceRepository is a mock implementation of reference.Repository
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) Employees(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) Locations(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) Products(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) ProductModels(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) ProductSubcategories(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) UnitMeasures(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) Addresses(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) Customers(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) SalesPeople(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) ShipMethods(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) Territories(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) CreditCards(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func (m *MockReferenceRepository) CurrencyRates(ctx context.Context) ([]shared.SelectOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]shared.SelectOption), args.Error(1)
}

func newProductService() (*ProductService, *MockProductRepository, *MockStagingRepository, *MockReferenceRepository) {
	productRepo := new(MockProductRepository)
	stagingRepo := new(MockStagingRepository)
	refRepo := new(MockReferenceRepository)
	return NewProductService(productRepo, stagingRepo, refRepo), productRepo, stagingRepo, refRepo
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("first page uses the fixed window and default includes", func(t *testing.T) {
		svc, productRepo, _, _ := newProductService()

		productRepo.On("Count", ctx).Return(int64(120), nil)
		productRepo.On("FindAll", ctx, mock.MatchedBy(func(q shared.ListQuery) bool {
			return q.Offset == 0 && q.Limit == 50 && q.OrderBy == "product_id" && len(q.Includes) == 4
		})).Return([]catalog.Product{{ProductID: 1}, {ProductID: 2}}, nil)

		result, err := svc.List(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(120), result.Total)
		assert.Equal(t, 3, result.TotalPages)
		assert.Len(t, result.Items, 2)
		productRepo.AssertExpectations(t)
	})

	t.Run("second page shifts the offset", func(t *testing.T) {
		svc, productRepo, _, _ := newProductService()

		productRepo.On("Count", ctx).Return(int64(120), nil)
		productRepo.On("FindAll", ctx, mock.MatchedBy(func(q shared.ListQuery) bool {
			return q.Offset == 50 && q.Limit == 50
		})).Return([]catalog.Product{}, nil)

		result, err := svc.List(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Page)
		productRepo.AssertExpectations(t)
	})

	t.Run("empty table still reports one page", func(t *testing.T) {
		svc, productRepo, _, _ := newProductService()

		productRepo.On("Count", ctx).Return(int64(0), nil)
		productRepo.On("FindAll", ctx, mock.Anything).Return([]catalog.Product{}, nil)

		result, err := svc.List(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalPages)
		productRepo.AssertExpectations(t)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	req := UpdateProductRequest{
		Name:          "HL Road Frame - Black, 58",
		ProductNumber: "FR-R92B-58",
		SellStartDate: stamp,
		ModifiedDate:  stamp,
	}

	t.Run("applies edit and rereads with relations", func(t *testing.T) {
		svc, productRepo, _, _ := newProductService()

		existing := &catalog.Product{ProductID: 680, Name: "old name"}
		productRepo.On("FindByID", ctx, 680, []string(nil)).Return(existing, nil).Once()
		productRepo.On("Update", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.Name == req.Name && p.ModifiedDate.Equal(stamp)
		})).Return(nil)
		productRepo.On("FindByID", ctx, 680, catalog.DefaultIncludes()).
			Return(&catalog.Product{ProductID: 680, Name: req.Name}, nil).Once()

		product, err := svc.Update(ctx, 680, req)

		require.NoError(t, err)
		assert.Equal(t, req.Name, product.Name)
		productRepo.AssertExpectations(t)
	})

	t.Run("propagates concurrency conflict", func(t *testing.T) {
		svc, productRepo, _, _ := newProductService()

		productRepo.On("FindByID", ctx, 680, []string(nil)).
			Return(&catalog.Product{ProductID: 680}, nil)
		productRepo.On("Update", ctx, mock.Anything).Return(shared.ErrConcurrencyConflict)

		product, err := svc.Update(ctx, 680, req)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, productRepo, _, _ := newProductService()

		productRepo.On("FindByID", ctx, 999999, []string(nil)).Return(nil, shared.ErrNotFound)

		product, err := svc.Update(ctx, 999999, req)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestProductService_CreateStaging(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the request onto a staging row", func(t *testing.T) {
		svc, _, stagingRepo, _ := newProductService()

		stagingRepo.On("Insert", ctx, mock.MatchedBy(func(row *catalog.NewProductStaging) bool {
			return row.Name == "Water Bottle - 30 oz." && row.ProductNumber == "WB-H098"
		})).Return(nil)

		err := svc.CreateStaging(ctx, CreateProductRequest{
			Name:          "Water Bottle - 30 oz.",
			ProductNumber: "WB-H098",
			SellStartDate: time.Now(),
		})

		assert.NoError(t, err)
		stagingRepo.AssertExpectations(t)
	})
}

func TestProductService_FormOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("collects the three option lists", func(t *testing.T) {
		svc, _, _, refRepo := newProductService()

		refRepo.On("ProductModels", ctx).Return([]shared.SelectOption{{Value: "6", Text: "HL Road Frame"}}, nil)
		refRepo.On("ProductSubcategories", ctx).Return([]shared.SelectOption{{Value: "14", Text: "Road Frames"}}, nil)
		refRepo.On("UnitMeasures", ctx).Return([]shared.SelectOption{{Value: "CM", Text: "Centimeter"}}, nil)

		options, err := svc.FormOptions(ctx)

		require.NoError(t, err)
		assert.Len(t, options.ProductModels, 1)
		assert.Len(t, options.ProductSubcategories, 1)
		assert.Len(t, options.UnitMeasures, 1)
		refRepo.AssertExpectations(t)
	})
}
