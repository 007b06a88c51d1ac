package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository persists identities. Duplicate email or phone is reported
// as errs.ValidationError naming the field.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
