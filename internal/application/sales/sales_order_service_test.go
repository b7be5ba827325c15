package sales

import (
	"context"
	"testing"
	"time"

	"github.com/awerp/backend/internal/domain/invoicing"
	"github.com/awerp/backend/internal/domain/sales"
	"github.com/awerp/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSalesOrderRepository is a mock implementation of sales.Repository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, q shared.ListQuery) ([]sales.SalesOrderHeader, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]sales.SalesOrderHeader), args.Error(1)
}

func (m *MockSalesOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, id int, includes ...string) (*sales.SalesOrderHeader, error) {
	args := m.Called(ctx, id, includes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesOrderHeader), args.Error(1)
}

func (m *MockSalesOrderRepository) Create(ctx context.Context, order *sales.SalesOrderHeader) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Update(ctx context.Context, order *sales.SalesOrderHeader) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of invoicing.Repository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindBySalesOrderID(ctx context.Context, salesOrderID int) (*invoicing.Invoice, error) {
	args := m.Called(ctx, salesOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsForSalesOrder(ctx context.Context, salesOrderID int) (bool, error) {
	args := m.Called(ctx, salesOrderID)
	return args.Bool(0), args.Error(1)
}

// MockProcedureGateway is a mock implementation of shared.ProcedureGateway
type MockProcedureGateway struct {
	mock.Mock
}

func (m *MockProcedureGateway) Invoke(ctx context.Context, operation string, procArgs ...any) (int64, error) {
	args := m.Called(ctx, operation, procArgs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProcedureGateway) Query(ctx context.Context, operation string, dest any, procArgs ...any) error {
	args := m.Called(ctx, operation, dest, procArgs)
	return args.Error(0)
}

// MockGenerationGuard is a mock implementation of shared.GenerationGuard
type MockGenerationGuard struct {
	mock.Mock
}

func (m *MockGenerationGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockGenerationGuard) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
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

func newSalesOrderService() (*SalesOrderService, *MockSalesOrderRepository, *MockInvoiceRepository, *MockProcedureGateway, *MockGenerationGuard) {
	orderRepo := new(MockSalesOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	refRepo := new(refRepoStub)
	gateway := new(MockProcedureGateway)
	guard := new(MockGenerationGuard)
	svc := NewSalesOrderService(orderRepo, invoiceRepo, refRepo, gateway, guard, zap.NewNop())
	return svc, orderRepo, invoiceRepo, gateway, guard
}

func TestSalesOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("pages with the fixed window and full include set", func(t *testing.T) {
		svc, orderRepo, _, _, _ := newSalesOrderService()

		orderRepo.On("Count", ctx).Return(int64(31465), nil)
		orderRepo.On("FindAll", ctx, mock.MatchedBy(func(q shared.ListQuery) bool {
			return q.Offset == 0 && q.Limit == 50 && len(q.Includes) == 8
		})).Return([]sales.SalesOrderHeader{{SalesOrderID: 43659}}, nil)

		result, err := svc.List(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, 630, result.TotalPages)
		orderRepo.AssertExpectations(t)
	})
}

func TestSalesOrderService_Update(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	req := UpdateSalesOrderRequest{
		CreateSalesOrderRequest: CreateSalesOrderRequest{
			OrderDate:        stamp,
			DueDate:          stamp.AddDate(0, 0, 12),
			Status:           sales.StatusApproved,
			SalesOrderNumber: "SO43659",
			CustomerID:       29825,
			BillToAddressID:  985,
			ShipToAddressID:  985,
			ShipMethodID:     5,
		},
		ModifiedDate: stamp,
	}

	t.Run("propagates concurrency conflict", func(t *testing.T) {
		svc, orderRepo, _, _, _ := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 43659, []string(nil)).
			Return(&sales.SalesOrderHeader{SalesOrderID: 43659}, nil)
		orderRepo.On("Update", ctx, mock.Anything).Return(shared.ErrConcurrencyConflict)

		order, err := svc.Update(ctx, 43659, req)

		assert.Nil(t, order)
		assert.Equal(t, shared.ErrConcurrencyConflict, err)
	})

	t.Run("applies edit and rereads with relations", func(t *testing.T) {
		svc, orderRepo, _, _, _ := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 43659, []string(nil)).
			Return(&sales.SalesOrderHeader{SalesOrderID: 43659, Status: sales.StatusInProcess}, nil).Once()
		orderRepo.On("Update", ctx, mock.MatchedBy(func(o *sales.SalesOrderHeader) bool {
			return o.Status == sales.StatusApproved && o.ModifiedDate.Equal(stamp)
		})).Return(nil)
		orderRepo.On("FindByID", ctx, 43659, sales.DefaultIncludes()).
			Return(&sales.SalesOrderHeader{SalesOrderID: 43659, Status: sales.StatusApproved}, nil).Once()

		order, err := svc.Update(ctx, 43659, req)

		require.NoError(t, err)
		assert.Equal(t, sales.StatusApproved, order.Status)
		orderRepo.AssertExpectations(t)
	})
}

func TestSalesOrderService_GenerateInvoice(t *testing.T) {
	ctx := context.Background()
	order := &sales.SalesOrderHeader{SalesOrderID: 43659, CustomerID: 29825}
	invoice := &invoicing.Invoice{InvoiceID: 1, SalesOrderID: 43659}

	t.Run("generates once and reads back", func(t *testing.T) {
		svc, orderRepo, invoiceRepo, gateway, guard := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 43659, []string(nil)).Return(order, nil)
		invoiceRepo.On("FindBySalesOrderID", ctx, 43659).Return(nil, shared.ErrNotFound).Once()
		guard.On("Acquire", ctx, "invoice:generate:43659", generationGuardTTL).Return(true, nil)
		gateway.On("Invoke", ctx, invoicing.OpGenerateInvoice, []any{43659}).Return(int64(1), nil)
		invoiceRepo.On("FindBySalesOrderID", ctx, 43659).Return(invoice, nil).Once()
		guard.On("Release", ctx, "invoice:generate:43659").Return(nil)

		got, err := svc.GenerateInvoice(ctx, 43659)

		require.NoError(t, err)
		assert.Equal(t, invoice, got)
		guard.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("existing invoice short-circuits generation", func(t *testing.T) {
		svc, orderRepo, invoiceRepo, gateway, guard := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 43659, []string(nil)).Return(order, nil)
		invoiceRepo.On("FindBySalesOrderID", ctx, 43659).Return(invoice, nil)

		got, err := svc.GenerateInvoice(ctx, 43659)

		require.NoError(t, err)
		assert.Equal(t, invoice, got)
		gateway.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything)
		guard.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("contended guard rejects the request", func(t *testing.T) {
		svc, orderRepo, invoiceRepo, gateway, guard := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 43659, []string(nil)).Return(order, nil)
		invoiceRepo.On("FindBySalesOrderID", ctx, 43659).Return(nil, shared.ErrNotFound)
		guard.On("Acquire", ctx, "invoice:generate:43659", generationGuardTTL).Return(false, nil)

		got, err := svc.GenerateInvoice(ctx, 43659)

		assert.Nil(t, got)
		assert.Equal(t, ErrGenerationInProgress, err)
		gateway.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unique index loser reads the winner's invoice", func(t *testing.T) {
		svc, orderRepo, invoiceRepo, gateway, guard := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 43659, []string(nil)).Return(order, nil)
		invoiceRepo.On("FindBySalesOrderID", ctx, 43659).Return(nil, shared.ErrNotFound).Once()
		guard.On("Acquire", ctx, "invoice:generate:43659", generationGuardTTL).Return(true, nil)
		conflict := shared.NewPersistenceConflict(`duplicate key value violates unique constraint "ux_invoice_sales_order_id"`)
		gateway.On("Invoke", ctx, invoicing.OpGenerateInvoice, []any{43659}).Return(int64(0), error(conflict))
		invoiceRepo.On("FindBySalesOrderID", ctx, 43659).Return(invoice, nil).Once()
		guard.On("Release", ctx, "invoice:generate:43659").Return(nil)

		got, err := svc.GenerateInvoice(ctx, 43659)

		require.NoError(t, err)
		assert.Equal(t, invoice, got)
	})

	t.Run("missing order reports not found", func(t *testing.T) {
		svc, orderRepo, _, _, _ := newSalesOrderService()

		orderRepo.On("FindByID", ctx, 1, []string(nil)).Return(nil, shared.ErrNotFound)

		got, err := svc.GenerateInvoice(ctx, 1)

		assert.Nil(t, got)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}
