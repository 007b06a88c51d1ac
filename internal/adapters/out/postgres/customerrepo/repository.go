package customerrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, aggregate.ID())
	}

	return nil
}

// Update writes the assignment pointer, including clearing it.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Update("assigned_worker_id", dto.AssignedWorkerID)
	if result.Error != nil {
		return translate(result.Error, aggregate.ID())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer_id", aggregate.ID())
	}

	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.get(ctx, id, false)
}

func (r *GormCustomerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.get(ctx, id, true)
}

func (r *GormCustomerRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto CustomerDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer_id", id)
		}
		return nil, err
	}

	return customerToDomain(dto)
}

func (r *GormCustomerRepository) AddAddress(ctx context.Context, address *customer.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(address)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, address.CustomerID())
	}
	return nil
}

func (r *GormCustomerRepository) GetAddress(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address_id", id)
		}
		return nil, err
	}

	return addressToDomain(dto)
}

func (r *GormCustomerRepository) ListAddresses(ctx context.Context, customerID kernel.UUID) ([]*customer.Address, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AddressDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	addresses := make([]*customer.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := addressToDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

func translate(err error, id kernel.UUID) error {
	if _, ok := pgerr.UniqueViolation(err); ok {
		return errs.NewFieldValidationError("Customer already exists", "customer_id")
	}
	if constraint, ok := pgerr.ForeignKeyViolation(err); ok {
		return errs.NewObjectNotFoundErrorWithCause(constraint, id, err)
	}
	return err
}
