package policyrepo

import (
	"context"

	"logistics/internal/core/domain/model/policy"

	"gorm.io/gorm"
)

type GormPolicyRepository struct {
	db *gorm.DB
}

func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{db: db}
}

func (r *GormPolicyRepository) Add(ctx context.Context, p policy.CancellationPolicy) error {
	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Table loads every stored policy. Rows that no longer parse are reported
// rather than skipped.
func (r *GormPolicyRepository) Table(ctx context.Context) (policy.Table, error) {
	var dtos []CancellationPolicyDTO
	if err := r.db.WithContext(ctx).Order("role, applies_within_minutes").Find(&dtos).Error; err != nil {
		return policy.Table{}, err
	}

	policies := make([]policy.CancellationPolicy, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return policy.Table{}, err
		}
		policies = append(policies, p)
	}
	return policy.NewTable(policies...), nil
}
