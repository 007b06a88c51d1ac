package userrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the user. A duplicate email or phone is returned as a
// validation error naming that field.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if constraint, ok := pgerr.UniqueViolation(err); ok {
		switch constraint {
		case emailConstraint:
			return errs.NewFieldValidationError("Email already registered", "email")
		case phoneConstraint:
			return errs.NewFieldValidationError("Phone number already registered", "phone")
		default:
			return errs.NewFieldValidationError("User already exists", "id")
		}
	}
	return err
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
