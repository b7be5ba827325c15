package catalog

import (
	"context"

	"github.com/awerp/backend/internal/domain/catalog"
	"github.com/awerp/backend/internal/domain/reference"
	"github.com/awerp/backend/internal/domain/shared"
)

// ProductService handles product listing, editing and staged creation
type ProductService struct {
	productRepo catalog.ProductRepository
	stagingRepo catalog.StagingRepository
	refRepo     reference.Repository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	stagingRepo catalog.StagingRepository,
	refRepo reference.Repository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		stagingRepo: stagingRepo,
		refRepo:     refRepo,
	}
}

// List returns one fixed-size page of products with the standard relations loaded
func (s *ProductService) List(ctx context.Context, page int) (shared.Paginated[catalog.Product], error) {
	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}

	page = shared.ClampPage(page)
	window := shared.Paginate(total, shared.DefaultPageSize, page)
	q := shared.NewListQuery(window, "product_id", catalog.DefaultIncludes()...)

	products, err := s.productRepo.FindAll(ctx, q)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}
	return shared.NewPaginated(products, total, page, shared.DefaultPageSize), nil
}

// GetByID retrieves a product with the standard relations loaded
func (s *ProductService) GetByID(ctx context.Context, id int) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id, catalog.DefaultIncludes()...)
}

// FormOptions recomputes the option lists the product forms bind
func (s *ProductService) FormOptions(ctx context.Context) (ProductFormOptions, error) {
	models, err := s.refRepo.ProductModels(ctx)
	if err != nil {
		return ProductFormOptions{}, err
	}
	subcategories, err := s.refRepo.ProductSubcategories(ctx)
	if err != nil {
		return ProductFormOptions{}, err
	}
	units, err := s.refRepo.UnitMeasures(ctx)
	if err != nil {
		return ProductFormOptions{}, err
	}
	return ProductFormOptions{
		ProductModels:        models,
		ProductSubcategories: subcategories,
		UnitMeasures:         units,
	}, nil
}

// EditForm returns the row as read plus the option lists for the edit form
func (s *ProductService) EditForm(ctx context.Context, id int) (*ProductForm, error) {
	product, err := s.productRepo.FindByID(ctx, id, catalog.DefaultIncludes()...)
	if err != nil {
		return nil, err
	}
	options, err := s.FormOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductForm{Product: product, Options: options}, nil
}

// Update applies a full-row edit. The request carries the modified_date the
// caller read; a stale stamp surfaces as shared.ErrConcurrencyConflict.
func (s *ProductService) Update(ctx context.Context, id int, req UpdateProductRequest) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(product)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(ctx, id, catalog.DefaultIncludes()...)
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.productRepo.Delete(ctx, id)
}

// CreateStaging stages a pending product creation for out-of-band promotion
func (s *ProductService) CreateStaging(ctx context.Context, req CreateProductRequest) error {
	return s.stagingRepo.Insert(ctx, req.toStaging())
}
