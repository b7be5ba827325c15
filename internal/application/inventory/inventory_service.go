package inventory

import (
	"context"

	"github.com/awerp/backend/internal/domain/inventory"
	"github.com/awerp/backend/internal/domain/reference"
	"github.com/awerp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InventoryService handles inventory listing, shelf/bin assignment and the
// stock operations. Quantity never changes through the repository: both
// mutations run inside the database so the non-negative invariant and the
// audit trail hold under concurrency.
type InventoryService struct {
	invRepo inventory.Repository
	logRepo inventory.ChangeLogRepository
	refRepo reference.Repository
	gateway shared.ProcedureGateway
	logger  *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	invRepo inventory.Repository,
	logRepo inventory.ChangeLogRepository,
	refRepo reference.Repository,
	gateway shared.ProcedureGateway,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		invRepo: invRepo,
		logRepo: logRepo,
		refRepo: refRepo,
		gateway: gateway,
		logger:  logger.Named("inventory"),
	}
}

// List returns one fixed-size page of inventory rows with product and
// location loaded
func (s *InventoryService) List(ctx context.Context, page int) (shared.Paginated[inventory.ProductInventory], error) {
	total, err := s.invRepo.Count(ctx)
	if err != nil {
		return shared.Paginated[inventory.ProductInventory]{}, err
	}

	page = shared.ClampPage(page)
	window := shared.Paginate(total, shared.DefaultPageSize, page)
	q := shared.NewListQuery(window, "product_id", inventory.DefaultIncludes()...)

	rows, err := s.invRepo.FindAll(ctx, q)
	if err != nil {
		return shared.Paginated[inventory.ProductInventory]{}, err
	}
	return shared.NewPaginated(rows, total, page, shared.DefaultPageSize), nil
}

// GetByKey retrieves one inventory row by its composite key
func (s *InventoryService) GetByKey(ctx context.Context, productID int, locationID int16) (*inventory.ProductInventory, error) {
	return s.invRepo.FindByKey(ctx, productID, locationID, inventory.DefaultIncludes()...)
}

// FormOptions recomputes the option lists the inventory forms bind
func (s *InventoryService) FormOptions(ctx context.Context) (InventoryFormOptions, error) {
	products, err := s.refRepo.Products(ctx)
	if err != nil {
		return InventoryFormOptions{}, err
	}
	locations, err := s.refRepo.Locations(ctx)
	if err != nil {
		return InventoryFormOptions{}, err
	}
	return InventoryFormOptions{Products: products, Locations: locations}, nil
}

// Create assigns a product to a shelf/bin at a location with zero stock
func (s *InventoryService) Create(ctx context.Context, req CreateInventoryRequest) (*inventory.ProductInventory, error) {
	row := req.toEntity()
	if err := s.invRepo.Create(ctx, row); err != nil {
		return nil, err
	}
	return s.invRepo.FindByKey(ctx, row.ProductID, row.LocationID, inventory.DefaultIncludes()...)
}

// UpdateQuantity sets the absolute quantity through the stored operation.
// A negative target or a missing row is rejected server-side and surfaces as
// a PERSISTENCE_CONFLICT domain error.
func (s *InventoryService) UpdateQuantity(ctx context.Context, req UpdateQuantityRequest) (*inventory.ProductInventory, error) {
	if _, err := s.invRepo.FindByKey(ctx, req.ProductID, req.LocationID); err != nil {
		return nil, err
	}

	if _, err := s.gateway.Invoke(ctx, inventory.OpUpdateQuantity, req.ProductID, req.LocationID, req.NewQuantity); err != nil {
		return nil, err
	}

	s.logger.Info("inventory quantity updated",
		zap.Int("product_id", req.ProductID),
		zap.Int16("location_id", req.LocationID),
		zap.Int16("new_quantity", req.NewQuantity),
	)
	return s.invRepo.FindByKey(ctx, req.ProductID, req.LocationID, inventory.DefaultIncludes()...)
}

// Replenish tops up every row below its reorder point and returns the number
// of rows touched
func (s *InventoryService) Replenish(ctx context.Context, req ReplenishRequest) (int64, error) {
	affected, err := s.gateway.Invoke(ctx, inventory.OpReplenish, req.Quantity)
	if err != nil {
		return 0, err
	}

	s.logger.Info("inventory replenished",
		zap.Int16("quantity", req.Quantity),
		zap.Int64("rows", affected),
	)
	return affected, nil
}

// ChangeLog returns one fixed-size page of the audit trail, newest first
func (s *InventoryService) ChangeLog(ctx context.Context, page int) (shared.Paginated[inventory.StockChangeLog], error) {
	total, err := s.logRepo.Count(ctx)
	if err != nil {
		return shared.Paginated[inventory.StockChangeLog]{}, err
	}

	page = shared.ClampPage(page)
	window := shared.Paginate(total, shared.DefaultPageSize, page)
	q := shared.NewListQuery(window, "log_id")
	q.OrderDir = "DESC"

	rows, err := s.logRepo.FindAll(ctx, q)
	if err != nil {
		return shared.Paginated[inventory.StockChangeLog]{}, err
	}
	return shared.NewPaginated(rows, total, page, shared.DefaultPageSize), nil
}
