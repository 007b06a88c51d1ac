package worker

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the availability of a worker.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Active:        "active",
		Inactive:      "inactive",
	}
}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewFieldValidationError("Invalid status", "status")
}

func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid worker status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
