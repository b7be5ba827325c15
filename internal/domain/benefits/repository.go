package benefits

import "context"

// Server-side operations owned by the employee-benefit schema. Argument order
// is fixed and positional; redemption exclusivity is enforced inside
// ebs.redeem_benefit, never here.
const (
	// OpAssign(employee_id, product_id, discount_percent)
	OpAssign = "ebs.assign_employee_benefit"
	// OpRedeem(benefit_id, employee_id)
	OpRedeem = "ebs.redeem_benefit"
	// OpUnpopularProducts() is table-valued
	OpUnpopularProducts = "ebs.get_unpopular_products"
)

// Repository reads benefit rows. Writes go through the procedure gateway.
type Repository interface {
	// FindUnredeemedByEmployee lists the benefits an employee can still
	// redeem, the option source for the redeem form.
	FindUnredeemedByEmployee(ctx context.Context, employeeID int) ([]EmployeeBenefit, error)
	FindByID(ctx context.Context, benefitID int) (*EmployeeBenefit, error)
}
