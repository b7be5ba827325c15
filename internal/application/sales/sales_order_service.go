package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/awerp/backend/internal/domain/invoicing"
	"github.com/awerp/backend/internal/domain/reference"
	"github.com/awerp/backend/internal/domain/sales"
	"github.com/awerp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// generationGuardTTL bounds how long a crashed holder can block invoice
// generation for an order.
const generationGuardTTL = 30 * time.Second

// ErrGenerationInProgress is returned when another request is generating the
// invoice for the same order right now.
var ErrGenerationInProgress = shared.NewDomainError(
	"GENERATION_IN_PROGRESS",
	"Invoice generation for this order is already in progress",
)

// SalesOrderService handles order CRUD and invoice generation
type SalesOrderService struct {
	orderRepo   sales.Repository
	invoiceRepo invoicing.Repository
	refRepo     reference.Repository
	gateway     shared.ProcedureGateway
	guard       shared.GenerationGuard
	logger      *zap.Logger
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo sales.Repository,
	invoiceRepo invoicing.Repository,
	refRepo reference.Repository,
	gateway shared.ProcedureGateway,
	guard shared.GenerationGuard,
	logger *zap.Logger,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		refRepo:     refRepo,
		gateway:     gateway,
		guard:       guard,
		logger:      logger.Named("sales"),
	}
}

// List returns one fixed-size page of order headers with the standard
// relations loaded
func (s *SalesOrderService) List(ctx context.Context, page int) (shared.Paginated[sales.SalesOrderHeader], error) {
	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		return shared.Paginated[sales.SalesOrderHeader]{}, err
	}

	page = shared.ClampPage(page)
	window := shared.Paginate(total, shared.DefaultPageSize, page)
	q := shared.NewListQuery(window, "sales_order_id", sales.DefaultIncludes()...)

	orders, err := s.orderRepo.FindAll(ctx, q)
	if err != nil {
		return shared.Paginated[sales.SalesOrderHeader]{}, err
	}
	return shared.NewPaginated(orders, total, page, shared.DefaultPageSize), nil
}

// GetByID retrieves an order header with the standard relations loaded
func (s *SalesOrderService) GetByID(ctx context.Context, id int) (*sales.SalesOrderHeader, error) {
	return s.orderRepo.FindByID(ctx, id, sales.DefaultIncludes()...)
}

// FormOptions recomputes the option lists the order forms bind
func (s *SalesOrderService) FormOptions(ctx context.Context) (SalesOrderFormOptions, error) {
	var opts SalesOrderFormOptions
	var err error

	if opts.Customers, err = s.refRepo.Customers(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	if opts.SalesPeople, err = s.refRepo.SalesPeople(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	if opts.Territories, err = s.refRepo.Territories(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	if opts.Addresses, err = s.refRepo.Addresses(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	if opts.ShipMethods, err = s.refRepo.ShipMethods(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	if opts.CreditCards, err = s.refRepo.CreditCards(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	if opts.CurrencyRates, err = s.refRepo.CurrencyRates(ctx); err != nil {
		return SalesOrderFormOptions{}, err
	}
	return opts, nil
}

// EditForm returns the row as read plus the option lists for the edit form
func (s *SalesOrderService) EditForm(ctx context.Context, id int) (*SalesOrderForm, error) {
	order, err := s.orderRepo.FindByID(ctx, id, sales.DefaultIncludes()...)
	if err != nil {
		return nil, err
	}
	options, err := s.FormOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesOrderForm{Order: order, Options: options}, nil
}

// Create inserts a new order header
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*sales.SalesOrderHeader, error) {
	order := req.toEntity()
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, order.SalesOrderID, sales.DefaultIncludes()...)
}

// Update applies a full-row edit. The request carries the modified_date the
// caller read; a stale stamp surfaces as shared.ErrConcurrencyConflict.
func (s *SalesOrderService) Update(ctx context.Context, id int, req UpdateSalesOrderRequest) (*sales.SalesOrderHeader, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(order)
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, id, sales.DefaultIncludes()...)
}

// Delete removes an order header
func (s *SalesOrderService) Delete(ctx context.Context, id int) error {
	return s.orderRepo.Delete(ctx, id)
}

// GetInvoice reads the invoice generated for an order, lines included
func (s *SalesOrderService) GetInvoice(ctx context.Context, salesOrderID int) (*invoicing.Invoice, error) {
	if _, err := s.orderRepo.FindByID(ctx, salesOrderID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindBySalesOrderID(ctx, salesOrderID)
}

// GenerateInvoice generates the invoice for an order, at most once.
//
// The guard keeps concurrent requests for the same order from both reaching
// the stored operation; the unique index on igs.invoice(sales_order_id) is
// the backstop. A loser of the index race reads back the winner's invoice
// instead of failing.
func (s *SalesOrderService) GenerateInvoice(ctx context.Context, salesOrderID int) (*invoicing.Invoice, error) {
	if _, err := s.orderRepo.FindByID(ctx, salesOrderID); err != nil {
		return nil, err
	}

	if invoice, err := s.invoiceRepo.FindBySalesOrderID(ctx, salesOrderID); err == nil {
		return invoice, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	key := fmt.Sprintf("invoice:generate:%d", salesOrderID)
	acquired, err := s.guard.Acquire(ctx, key, generationGuardTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrGenerationInProgress
	}
	defer func() {
		if err := s.guard.Release(ctx, key); err != nil {
			s.logger.Warn("failed to release generation guard",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}()

	if _, err := s.gateway.Invoke(ctx, invoicing.OpGenerateInvoice, salesOrderID); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "PERSISTENCE_CONFLICT" {
			return s.invoiceRepo.FindBySalesOrderID(ctx, salesOrderID)
		}
		return nil, err
	}

	s.logger.Info("invoice generated", zap.Int("sales_order_id", salesOrderID))
	return s.invoiceRepo.FindBySalesOrderID(ctx, salesOrderID)
}
