package user

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Role is the actor kind carried by every authenticated request.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota
	Customer
	Worker
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Worker:      "worker",
		Admin:       "admin",
	}
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
}

// Validate rejects UnknownRole and values outside the enum.
func (r Role) Validate() error {
	if r != Customer && r != Worker && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// HasProfile reports whether the role owns a profile row (customer or worker).
func (r Role) HasProfile() bool {
	return r == Customer || r == Worker
}
