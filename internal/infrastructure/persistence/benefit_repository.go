package persistence

import (
	"context"
	"errors"

	"github.com/awerp/backend/internal/domain/benefits"
	"github.com/awerp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBenefitRepository implements benefits.Repository using GORM
type GormBenefitRepository struct {
	db *gorm.DB
}

// NewGormBenefitRepository creates a new GormBenefitRepository
func NewGormBenefitRepository(db *gorm.DB) *GormBenefitRepository {
	return &GormBenefitRepository{db: db}
}

// FindUnredeemedByEmployee lists the benefits an employee can still redeem
func (r *GormBenefitRepository) FindUnredeemedByEmployee(ctx context.Context, employeeID int) ([]benefits.EmployeeBenefit, error) {
	var rows []benefits.EmployeeBenefit
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND redeemed = false", employeeID).
		Order("assigned_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID finds a benefit by its ID
func (r *GormBenefitRepository) FindByID(ctx context.Context, benefitID int) (*benefits.EmployeeBenefit, error) {
	var row benefits.EmployeeBenefit
	if err := r.db.WithContext(ctx).First(&row, "benefit_id = ?", benefitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Ensure GormBenefitRepository implements benefits.Repository
var _ benefits.Repository = (*GormBenefitRepository)(nil)
