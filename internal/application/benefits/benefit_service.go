package benefits

import (
	"context"
	"fmt"

	"github.com/awerp/backend/internal/domain/benefits"
	"github.com/awerp/backend/internal/domain/reference"
	"github.com/awerp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BenefitService handles the employee benefit program: listing candidate
// products, assigning discounts and redeeming them. Assignment and redemption
// both run inside the database; redemption exclusivity is enforced there,
// never here.
type BenefitService struct {
	benefitRepo benefits.Repository
	refRepo     reference.Repository
	gateway     shared.ProcedureGateway
	logger      *zap.Logger
}

// NewBenefitService creates a new BenefitService
func NewBenefitService(
	benefitRepo benefits.Repository,
	refRepo reference.Repository,
	gateway shared.ProcedureGateway,
	logger *zap.Logger,
) *BenefitService {
	return &BenefitService{
		benefitRepo: benefitRepo,
		refRepo:     refRepo,
		gateway:     gateway,
		logger:      logger.Named("benefits"),
	}
}

// UnpopularProducts returns one fixed-size page of the products the
// table-valued operation nominates for the benefit program. The operation has
// no window arguments, so the page is cut here after the full result is read.
func (s *BenefitService) UnpopularProducts(ctx context.Context, page int) (shared.Paginated[benefits.BenefitProduct], error) {
	var products []benefits.BenefitProduct
	if err := s.gateway.Query(ctx, benefits.OpUnpopularProducts, &products); err != nil {
		return shared.Paginated[benefits.BenefitProduct]{}, err
	}

	total := int64(len(products))
	page = shared.ClampPage(page)
	window := shared.Paginate(total, shared.DefaultPageSize, page)

	start := window.Offset
	if start > len(products) {
		start = len(products)
	}
	end := start + window.Limit
	if end > len(products) {
		end = len(products)
	}

	return shared.NewPaginated(products[start:end], total, page, shared.DefaultPageSize), nil
}

// AssignForm recomputes the option lists the assign form binds
func (s *BenefitService) AssignForm(ctx context.Context) (AssignFormOptions, error) {
	employees, err := s.refRepo.Employees(ctx)
	if err != nil {
		return AssignFormOptions{}, err
	}
	products, err := s.refRepo.Products(ctx)
	if err != nil {
		return AssignFormOptions{}, err
	}
	return AssignFormOptions{Employees: employees, Products: products}, nil
}

// Assign grants an employee a discount on a product through the stored
// operation
func (s *BenefitService) Assign(ctx context.Context, req AssignRequest) error {
	if _, err := s.gateway.Invoke(ctx, benefits.OpAssign, req.EmployeeID, req.ProductID, req.DiscountPercent); err != nil {
		return err
	}

	s.logger.Info("benefit assigned",
		zap.Int("employee_id", req.EmployeeID),
		zap.Int("product_id", req.ProductID),
	)
	return nil
}

// RedeemForm recomputes the option lists the redeem form binds. The benefit
// options cover only the employee's unredeemed assignments.
func (s *BenefitService) RedeemForm(ctx context.Context, employeeID int) (RedeemFormOptions, error) {
	employees, err := s.refRepo.Employees(ctx)
	if err != nil {
		return RedeemFormOptions{}, err
	}

	opts := RedeemFormOptions{Employees: employees, Benefits: []shared.SelectOption{}}
	if employeeID <= 0 {
		return opts, nil
	}

	rows, err := s.benefitRepo.FindUnredeemedByEmployee(ctx, employeeID)
	if err != nil {
		return RedeemFormOptions{}, err
	}
	for _, b := range rows {
		opts.Benefits = append(opts.Benefits, shared.SelectOption{
			Value: fmt.Sprintf("%d", b.BenefitID),
			Text:  fmt.Sprintf("Benefit %d - product %d (%s%%)", b.BenefitID, b.ProductID, b.DiscountPercent.String()),
		})
	}
	return opts, nil
}

// Redeem redeems a benefit through the stored operation. Redeeming twice, or
// for the wrong employee, is rejected server-side and surfaces as a
// PERSISTENCE_CONFLICT domain error.
func (s *BenefitService) Redeem(ctx context.Context, req RedeemRequest) (*benefits.EmployeeBenefit, error) {
	if _, err := s.benefitRepo.FindByID(ctx, req.BenefitID); err != nil {
		return nil, err
	}

	if _, err := s.gateway.Invoke(ctx, benefits.OpRedeem, req.BenefitID, req.EmployeeID); err != nil {
		return nil, err
	}

	s.logger.Info("benefit redeemed",
		zap.Int("benefit_id", req.BenefitID),
		zap.Int("employee_id", req.EmployeeID),
	)
	return s.benefitRepo.FindByID(ctx, req.BenefitID)
}
