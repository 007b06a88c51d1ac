package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotClaimable is returned by Claim when the order already has a
	// worker or has left the created status. Callers report it as not found so
	// that a lost race looks the same as a missing order.
	ErrOrderIsNotClaimable = errors.New("order is not available for claiming")
)

// StatusChange is one pending OrderStatusHistory entry.
type StatusChange struct {
	Status    Status
	ChangedBy kernel.UUID
	ChangedAt time.Time
}

// Draft carries the caller supplied attributes of a new order.
type Draft struct {
	CustomerID   kernel.UUID
	WorkerID     *kernel.UUID
	AddressID    kernel.UUID
	PickupTime   time.Time
	DeliveryTime time.Time
	Price        float64
}

// Snapshot is the persisted form of an order, used by RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	WorkerID        *kernel.UUID
	AddressID       kernel.UUID
	PickupTime      time.Time
	DeliveryTime    time.Time
	Status          Status
	Price           float64
	CancellationFee float64
	CreatedBy       kernel.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Order is the aggregate root of the delivery lifecycle.
//
// Order follows these invariants:
//   - delivery time is after pickup time
//   - price and cancellation fee are never negative and the fee never exceeds the price
//   - the customer never changes and the worker is set at most once
//   - status only moves along the successor table or to cancelled
//
// Every status change is kept as a pending StatusChange until the repository
// has written it.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	workerID        *kernel.UUID
	addressID       kernel.UUID
	pickupTime      time.Time
	deliveryTime    time.Time
	status          Status
	price           float64
	cancellationFee float64
	createdBy       kernel.UUID
	createdAt       time.Time
	updatedAt       time.Time

	changes []StatusChange

	isConstructed bool
}

// NewOrder creates an order in the created status.
//
// Validation is reported per field as errs.ValidationError:
//   - delivery_time when delivery is not after pickup
//   - pickup_time when pickup is not strictly after now
//   - price when the price is negative
//
// All timestamps are stored in UTC. The initial status is recorded as the
// first history entry, attributed to createdBy.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
//	    CustomerID:   customerID,
//	    AddressID:    addressID,
//	    PickupTime:   now.Add(2 * time.Hour),
//	    DeliveryTime: now.Add(4 * time.Hour),
//	    Price:        1000,
//	}, customerID, now)
func NewOrder(id kernel.UUID, draft Draft, createdBy kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(draft.CustomerID, draft.WorkerID, draft.AddressID, createdBy),
		o.setSchedule(draft.PickupTime, draft.DeliveryTime, now),
		o.setPrice(draft.Price),
	); err != nil {
		return nil, err
	}

	o.record(Created, createdBy, now)
	return o, nil
}

// RestoreOrder rebuilds an order from persistence. Creation-time rules such
// as the future pickup are not re-checked; structural invariants are.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.AddressID.Validate(),
		s.CreatedBy.Validate(),
		s.Status.Validate(),
		s.Status.ValidateCanHaveWorker(s.WorkerID != nil),
	); err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if s.WorkerID != nil {
		w := *s.WorkerID
		workerID = &w
	}

	return &Order{
		id:              s.ID,
		customerID:      s.CustomerID,
		workerID:        workerID,
		addressID:       s.AddressID,
		pickupTime:      s.PickupTime.UTC(),
		deliveryTime:    s.DeliveryTime.UTC(),
		status:          s.Status,
		price:           s.Price,
		cancellationFee: s.CancellationFee,
		createdBy:       s.CreatedBy,
		createdAt:       s.CreatedAt.UTC(),
		updatedAt:       s.UpdatedAt.UTC(),
		isConstructed:   true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID          { return o.id }
func (o *Order) CustomerID() kernel.UUID  { return o.customerID }
func (o *Order) AddressID() kernel.UUID   { return o.addressID }
func (o *Order) PickupTime() time.Time    { return o.pickupTime }
func (o *Order) DeliveryTime() time.Time  { return o.deliveryTime }
func (o *Order) Status() Status           { return o.status }
func (o *Order) Price() float64           { return o.price }
func (o *Order) CancellationFee() float64 { return o.cancellationFee }
func (o *Order) CreatedBy() kernel.UUID   { return o.createdBy }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }

// Worker returns the assigned worker, or nil while unclaimed.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// BelongsTo reports whether customerID owns the order.
func (o *Order) BelongsTo(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether workerID is the order's worker.
func (o *Order) IsAssignedTo(workerID kernel.UUID) bool {
	return o.workerID != nil && o.workerID.IsEqual(workerID)
}

// TimeToPickup is negative once the pickup time has passed.
func (o *Order) TimeToPickup(now time.Time) time.Duration {
	return o.pickupTime.Sub(now.UTC())
}

// Claim assigns an unclaimed order to workerID and moves it to claimed.
// ErrOrderIsNotClaimable is returned when the order has a worker or is no
// longer in the created status.
func (o *Order) Claim(workerID kernel.UUID, at time.Time) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if o.workerID != nil || o.status != Created {
		return ErrOrderIsNotClaimable
	}

	o.workerID = &workerID
	o.status = Claimed
	o.touch(at)
	o.record(Claimed, workerID, at)
	return nil
}

// AdvanceTo moves the order one step forward along the successor table.
// See Status.ValidateAdvance for the rejected cases.
func (o *Order) AdvanceTo(target Status, changedBy kernel.UUID, at time.Time) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateAdvance(target); err != nil {
		return err
	}

	o.status = target
	o.touch(at)
	o.record(target, changedBy, at)
	return nil
}

// Cancel moves a non-terminal order to cancelled and stores the fee.
//
// Rejected with errs.ValidationError:
//   - pickup_time when now is after the pickup time
//   - status when the order is already completed or cancelled
//
// The fee must lie within [0, price].
func (o *Order) Cancel(fee float64, changedBy kernel.UUID, now time.Time) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}
	if now.UTC().After(o.pickupTime) {
		return errs.NewFieldValidationError("Cannot cancel order after pickup time", "pickup_time")
	}
	if o.status.IsTerminal() {
		return errs.NewFieldValidationError(fmt.Sprintf("Order is already %s", o.status), "status")
	}
	if fee < 0 || fee > o.price {
		return errs.NewValueIsOutOfRangeError("cancellation_fee", fee, 0, o.price)
	}

	o.status = Cancelled
	o.cancellationFee = fee
	o.touch(now)
	o.record(Cancelled, changedBy, now)
	return nil
}

// PendingStatusChanges returns the history entries not yet persisted.
func (o *Order) PendingStatusChanges() []StatusChange {
	return o.changes
}

// ClearPendingStatusChanges is called by the repository once the entries
// are written.
func (o *Order) ClearPendingStatusChanges() {
	o.changes = nil
}

func (o *Order) record(status Status, by kernel.UUID, at time.Time) {
	o.changes = append(o.changes, StatusChange{
		Status:    status,
		ChangedBy: by,
		ChangedAt: at.UTC(),
	})
}

func (o *Order) touch(at time.Time) {
	o.updatedAt = at.UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID kernel.UUID, workerID *kernel.UUID, addressID, createdBy kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewFieldValidationError("Customer is required", "customer_id")
	}
	if err := addressID.Validate(); err != nil {
		return errs.NewFieldValidationError("Address is required", "address_id")
	}
	if err := createdBy.Validate(); err != nil {
		return err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return errs.NewFieldValidationError("Worker is invalid", "worker_id")
		}
		w := *workerID
		o.workerID = &w
	}
	o.customerID = customerID
	o.addressID = addressID
	o.createdBy = createdBy
	return nil
}

func (o *Order) setSchedule(pickup, delivery, now time.Time) error {
	pickup, delivery, now = pickup.UTC(), delivery.UTC(), now.UTC()
	if !delivery.After(pickup) {
		return errs.NewFieldValidationError("Delivery time must be after pickup time", "delivery_time")
	}
	if !pickup.After(now) {
		return errs.NewFieldValidationError("Pickup time must be in the future", "pickup_time")
	}
	o.pickupTime = pickup
	o.deliveryTime = delivery
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price < 0 {
		return errs.NewFieldValidationError("Price must not be negative", "price")
	}
	o.price = price
	return nil
}
