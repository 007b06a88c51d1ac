// Package policyrepo stores the cancellation policy table.
package policyrepo

import (
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type CancellationPolicyDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role                 string    `gorm:"type:varchar(16);not null;index"`
	FeePercentage        float64   `gorm:"not null"`
	AppliesWithinMinutes int       `gorm:"not null"`
}

func (CancellationPolicyDTO) TableName() string {
	return "cancellation_policies"
}

func fromDomain(p policy.CancellationPolicy) CancellationPolicyDTO {
	return CancellationPolicyDTO{
		ID:                   uuid.New(),
		Role:                 p.Role().String(),
		FeePercentage:        p.FeePercentage(),
		AppliesWithinMinutes: p.AppliesWithinMinutes(),
	}
}

func toDomain(dto CancellationPolicyDTO) (policy.CancellationPolicy, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return policy.CancellationPolicy{}, err
	}
	return policy.NewCancellationPolicy(role, dto.FeePercentage, dto.AppliesWithinMinutes)
}
