package order

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Claimed ──> PickedUp ──> InProgress ──> Delivered ──> Completed
//	   │           │           │             │              │
//	   └───────────┴───────────┴─────────────┴──────────────┴──> Cancelled
//
// Forward moves go through Next; cancellation is reachable from every
// non-terminal state but only through Order.Cancel.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	Created
	Claimed
	PickedUp
	InProgress
	Delivered
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		Claimed:    "claimed",
		PickedUp:   "picked_up",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getSuccessors is the forward step table. Terminal states have no entry.
func getSuccessors() map[Status]Status {
	//nolint:exhaustive // terminal and unknown statuses have no successor
	return map[Status]Status{
		Created:    Claimed,
		Claimed:    PickedUp,
		PickedUp:   InProgress,
		InProgress: Delivered,
		Delivered:  Completed,
	}
}

// ParseStatus resolves a status name case-insensitively. Unknown names are
// reported as a validation error on the "status" field.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewFieldValidationError(fmt.Sprintf("Invalid status: %s", name), "status")
}

// Validate rejects Unknown and values outside the enum. It is used when
// restoring orders from persistence.
func (s Status) Validate() error {
	if s < Created || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further change is allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the only status an order in s may move to without cancelling.
func (s Status) Next() (Status, bool) {
	next, ok := getSuccessors()[s]
	return next, ok
}

// ValidateAdvance checks that target is the immediate successor of s.
//
// Rejected with a validation error on the "status" field:
//   - target is Cancelled (cancellation has its own operation)
//   - s is terminal
//   - target skips or repeats a step
func (s Status) ValidateAdvance(target Status) error {
	if target == Cancelled {
		return errs.NewFieldValidationError("Orders can only be cancelled through cancellation", "status")
	}
	if s.IsTerminal() {
		return errs.NewFieldValidationError(fmt.Sprintf("Order is already %s", s), "status")
	}
	next, ok := s.Next()
	if !ok || next != target {
		return errs.NewFieldValidationError(
			fmt.Sprintf("Invalid status transition from %s to %s", s, target), "status")
	}
	return nil
}

// ValidateCanHaveWorker checks that orders past the claim step have a worker.
func (s Status) ValidateCanHaveWorker(hasWorker bool) error {
	if !hasWorker && s >= Claimed && s <= Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no worker", s),
		)
	}
	return nil
}
