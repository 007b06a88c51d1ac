// Package userrepo persists identities. Email and phone are unique.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

const (
	emailConstraint = "uq_users_email"
	phoneConstraint = "uq_users_phone"
)

type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Phone     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_users_phone"`
	Role      string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		Name:      u.Name(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone, role, dto.CreatedAt, dto.UpdatedAt)
}
